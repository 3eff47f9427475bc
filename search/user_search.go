package search

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"

	"github.com/gsonntag/bruinbite/entity"
)

// UserDocument is the indexed projection of a user.
type UserDocument struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func UserToDocument(user entity.User) UserDocument {
	return UserDocument{
		ID:        strconv.FormatUint(uint64(user.ID), 10),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// UserIndex wraps the bleve index used for friend search.
type UserIndex struct {
	index bleve.Index
}

func OpenUserIndex(path string, forceReindex bool) (*UserIndex, error) {
	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) || forceReindex {
		if forceReindex && statErr == nil {
			if err := os.RemoveAll(path); err != nil {
				return nil, fmt.Errorf("removing existing user index: %w", err)
			}
		}
		indexMapping := bleve.NewIndexMapping()
		userMapping := bleve.NewDocumentMapping()
		usernameField := bleve.NewTextFieldMapping()
		usernameField.Analyzer = standard.Name
		userMapping.AddFieldMappingsAt("username", usernameField)
		indexMapping.AddDocumentMapping("user", userMapping)
		indexMapping.DefaultAnalyzer = standard.Name

		index, err := bleve.New(path, indexMapping)
		if err != nil {
			return nil, fmt.Errorf("creating user index: %w", err)
		}
		return &UserIndex{index: index}, nil
	}

	index, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening user index: %w", err)
	}
	return &UserIndex{index: index}, nil
}

func (x *UserIndex) Close() error {
	return x.index.Close()
}

func (x *UserIndex) Index(doc UserDocument) error {
	return x.index.Index(doc.ID, doc)
}

func (x *UserIndex) IndexBatch(docs []UserDocument) error {
	batch := x.index.NewBatch()
	for _, doc := range docs {
		batch.Index(doc.ID, doc)
	}
	return x.index.Batch(batch)
}

// Reindex drops everything and indexes the given set.
func (x *UserIndex) Reindex(docs []UserDocument) error {
	count, err := x.index.DocCount()
	if err != nil {
		return err
	}
	if count > 0 {
		// delete by walking the ids we know about
		for _, doc := range docs {
			if err := x.index.Delete(doc.ID); err != nil {
				return err
			}
		}
	}
	return x.IndexBatch(docs)
}

// Search matches usernames with fuzziness 1, excluding the searching user.
func (x *UserIndex) Search(username string, excludeID uint, limit int) ([]UserDocument, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("empty query string")
	}

	userQuery := bleve.NewMatchQuery(username)
	userQuery.SetField("username")
	userQuery.SetFuzziness(1)

	request := bleve.NewSearchRequest(userQuery)
	request.Size = limit + 1 // room for the excluded self row
	request.Fields = []string{"*"}
	request.SortBy([]string{"-_score"})

	results, err := x.index.Search(request)
	if err != nil {
		return nil, err
	}

	exclude := strconv.FormatUint(uint64(excludeID), 10)
	docs := make([]UserDocument, 0, len(results.Hits))
	for _, hit := range results.Hits {
		if hit.ID == exclude {
			continue
		}
		doc := UserDocument{ID: hit.ID}
		if v, ok := hit.Fields["username"].(string); ok {
			doc.Username = v
		}
		if v, ok := hit.Fields["email"].(string); ok {
			doc.Email = v
		}
		docs = append(docs, doc)
		if len(docs) == limit {
			break
		}
	}
	return docs, nil
}

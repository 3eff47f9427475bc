package search

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/token/porter"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/gsonntag/bruinbite/entity"
)

// DishDocument is the indexed projection of a dish.
type DishDocument struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HallID      uint   `json:"hall_id"`
	HallName    string `json:"hall_name"`
	Location    string `json:"location"`
}

func DishToDocument(dish entity.Dish, hallName string) DishDocument {
	description := ""
	if dish.Description != nil {
		description = *dish.Description
	}
	return DishDocument{
		ID:          strconv.FormatUint(uint64(dish.ID), 10),
		Name:        dish.Name,
		Description: description,
		HallID:      dish.HallID,
		HallName:    hallName,
		Location:    dish.Location,
	}
}

// DishIndex wraps the bleve index holding dish documents.
type DishIndex struct {
	index bleve.Index
}

// OpenDishIndex opens the index at path, creating it (or recreating it,
// with forceReindex) as needed.
func OpenDishIndex(path string, forceReindex bool) (*DishIndex, error) {
	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) || forceReindex {
		if forceReindex && statErr == nil {
			if err := os.RemoveAll(path); err != nil {
				return nil, fmt.Errorf("removing existing index: %w", err)
			}
		}
		indexMapping, err := buildDishMapping()
		if err != nil {
			return nil, fmt.Errorf("building index mapping: %w", err)
		}
		index, err := bleve.New(path, indexMapping)
		if err != nil {
			return nil, fmt.Errorf("creating index: %w", err)
		}
		return &DishIndex{index: index}, nil
	}

	index, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	return &DishIndex{index: index}, nil
}

func buildDishMapping() (mapping.IndexMapping, error) {
	indexMapping := bleve.NewIndexMapping()

	// descriptions get stemmed so "grilled" matches "grill"
	err := indexMapping.AddCustomAnalyzer("description_analyzer", map[string]interface{}{
		"type":      custom.Name,
		"tokenizer": unicode.Name,
		"token_filters": []string{
			lowercase.Name,
			porter.Name,
		},
	})
	if err != nil {
		return nil, err
	}

	dishMapping := bleve.NewDocumentMapping()

	nameField := bleve.NewTextFieldMapping()
	nameField.Analyzer = standard.Name
	dishMapping.AddFieldMappingsAt("name", nameField)

	descriptionField := bleve.NewTextFieldMapping()
	descriptionField.Analyzer = "description_analyzer"
	dishMapping.AddFieldMappingsAt("description", descriptionField)

	hallNameField := bleve.NewTextFieldMapping()
	hallNameField.Analyzer = standard.Name
	dishMapping.AddFieldMappingsAt("hall_name", hallNameField)

	indexMapping.AddDocumentMapping("dish", dishMapping)
	indexMapping.DefaultAnalyzer = standard.Name
	return indexMapping, nil
}

func (x *DishIndex) Close() error {
	return x.index.Close()
}

func (x *DishIndex) Index(doc DishDocument) error {
	return x.index.Index(doc.ID, doc)
}

func (x *DishIndex) IndexBatch(docs []DishDocument) error {
	batch := x.index.NewBatch()
	for _, doc := range docs {
		batch.Index(doc.ID, doc)
	}
	return x.index.Batch(batch)
}

func (x *DishIndex) Delete(id string) error {
	return x.index.Delete(id)
}

// Search matches the keyword against dish names (fuzziness 1) or stemmed
// descriptions, optionally restricted to one hall slug.
func (x *DishIndex) Search(keyword, hallFilter string, limit int) ([]DishDocument, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("empty query string")
	}

	nameQuery := bleve.NewMatchQuery(keyword)
	nameQuery.SetField("name")
	nameQuery.SetFuzziness(1)

	descQuery := bleve.NewMatchQuery(keyword)
	descQuery.SetField("description")

	var finalQuery query.Query = bleve.NewDisjunctionQuery(nameQuery, descQuery)
	if hallFilter != "" {
		hallQuery := bleve.NewMatchQuery(hallFilter)
		hallQuery.SetField("hall_name")
		finalQuery = bleve.NewConjunctionQuery(finalQuery, hallQuery)
	}

	request := bleve.NewSearchRequest(finalQuery)
	request.Size = limit
	request.Fields = []string{"*"}
	request.SortBy([]string{"-_score"})

	results, err := x.index.Search(request)
	if err != nil {
		return nil, err
	}

	docs := make([]DishDocument, 0, len(results.Hits))
	for _, hit := range results.Hits {
		doc := DishDocument{ID: hit.ID}
		if v, ok := hit.Fields["name"].(string); ok {
			doc.Name = v
		}
		if v, ok := hit.Fields["description"].(string); ok {
			doc.Description = v
		}
		if v, ok := hit.Fields["hall_id"].(float64); ok {
			doc.HallID = uint(v)
		}
		if v, ok := hit.Fields["hall_name"].(string); ok {
			doc.HallName = v
		}
		if v, ok := hit.Fields["location"].(string); ok {
			doc.Location = v
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

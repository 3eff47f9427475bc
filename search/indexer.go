package search

import (
	"fmt"
	"log"

	"github.com/gsonntag/bruinbite/repository"
)

// Indexer feeds the bleve indexes from the database in batches.
type Indexer struct {
	dishes    *repository.DishRepository
	halls     *repository.HallRepository
	users     *repository.UserRepository
	dishIdx   *DishIndex
	userIdx   *UserIndex
	batchSize int
}

func NewIndexer(dishes *repository.DishRepository, halls *repository.HallRepository, users *repository.UserRepository, dishIdx *DishIndex, userIdx *UserIndex, batchSize int) *Indexer {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Indexer{
		dishes:    dishes,
		halls:     halls,
		users:     users,
		dishIdx:   dishIdx,
		userIdx:   userIdx,
		batchSize: batchSize,
	}
}

// IndexAllDishes walks every dish and (re)indexes it.
func (i *Indexer) IndexAllDishes() error {
	dishes, err := i.dishes.FindAll()
	if err != nil {
		return fmt.Errorf("fetching dishes: %w", err)
	}
	log.Printf("indexing %d dishes", len(dishes))

	hallNames := make(map[uint]string)
	var batch []DishDocument
	for _, dish := range dishes {
		hallName, ok := hallNames[dish.HallID]
		if !ok {
			hall, err := i.halls.FindByID(dish.HallID)
			if err != nil {
				log.Printf("no hall for dish %q (id %d): %v", dish.Name, dish.ID, err)
				hallName = "unknown"
			} else {
				hallName = hall.Name
			}
			hallNames[dish.HallID] = hallName
		}

		batch = append(batch, DishToDocument(dish, hallName))
		if len(batch) >= i.batchSize {
			if err := i.dishIdx.IndexBatch(batch); err != nil {
				return fmt.Errorf("batch indexing dishes: %w", err)
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := i.dishIdx.IndexBatch(batch); err != nil {
			return fmt.Errorf("batch indexing dishes: %w", err)
		}
	}
	return nil
}

// IndexAllUsers walks every user and (re)indexes it.
func (i *Indexer) IndexAllUsers() error {
	users, err := i.users.FindAll()
	if err != nil {
		return fmt.Errorf("fetching users: %w", err)
	}
	log.Printf("indexing %d users", len(users))

	docs := make([]UserDocument, len(users))
	for n, user := range users {
		docs[n] = UserToDocument(user)
	}
	return i.userIdx.IndexBatch(docs)
}

// ReindexAll rebuilds both indexes from scratch.
func (i *Indexer) ReindexAll() error {
	if err := i.IndexAllDishes(); err != nil {
		return err
	}
	return i.IndexAllUsers()
}

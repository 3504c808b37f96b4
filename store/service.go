package store

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/fooddonglanh/snake-game/constants"
	"github.com/fooddonglanh/snake-game/service"
)

var _ service.Service = (*StoreService)(nil)

// StoreService opens the data file for the process lifetime
// A corrupt file is moved aside so the session starts from an empty store
type StoreService struct {
	path    string
	kv      *FileStore
	scores  *HighScore
	history *History
}

// NewService creates a store service
func NewService() *StoreService {
	return &StoreService{}
}

// Name implements Service
func (s *StoreService) Name() string {
	return "store"
}

// Dependencies implements Service
func (s *StoreService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: string - data file path, constants.DefaultDataFile when absent
func (s *StoreService) Init(args ...any) error {
	s.path = constants.DefaultDataFile
	if len(args) > 0 {
		if p, ok := args[0].(string); ok && p != "" {
			s.path = p
		}
	}

	kv, err := Open(s.path)
	if errors.Is(err, ErrCorrupt) {
		aside := s.path + ".corrupt"
		log.Printf("%v, moving to %s", err, aside)
		if rerr := os.Rename(s.path, aside); rerr != nil {
			return fmt.Errorf("move corrupt data file: %w", rerr)
		}
		kv, err = Open(s.path)
	}
	if err != nil {
		return err
	}

	s.kv = kv
	s.scores = NewHighScore(kv)
	s.history = NewHistory(kv)
	return nil
}

// Start implements Service
func (s *StoreService) Start() error {
	return nil
}

// Stop implements Service, every write is already flushed
func (s *StoreService) Stop() error {
	return nil
}

// HighScore returns the high-score adapter, nil before Init
func (s *StoreService) HighScore() *HighScore {
	return s.scores
}

// History returns the play history, nil before Init
func (s *StoreService) History() *History {
	return s.history
}

// Path returns the data file in use
func (s *StoreService) Path() string {
	return s.path
}

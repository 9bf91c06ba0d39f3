package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/cartcraft/backend/pkg/logger"
)

// Store — персистентное хранилище корзины. Сбои не фатальны:
// ошибка чтения даёт пустую корзину, ошибка записи — no-op с логом.
type Store interface {
	Load() []Item
	Save(items []Item)
	Clear()
}

// FileStore хранит корзину как JSON-файл по фиксированному пути.
type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(path string, logger logger.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load читает корзину с диска. Отсутствующий или повреждённый файл —
// пустая корзина, не ошибка.
func (s *FileStore) Load() []Item {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warnf("Failed to read cart from %s: %v", s.path, err)
		}
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warnf("Failed to parse cart from %s: %v", s.path, err)
		return []Item{}
	}

	if items == nil {
		items = []Item{}
	}

	return items
}

// Save записывает корзину на диск, молча проглатывая ошибку записи.
func (s *FileStore) Save(items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Warnf("Failed to marshal cart: %v", err)
		return
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Warnf("Failed to save cart to %s: %v", s.path, err)
	}
}

// Clear удаляет сохранённую корзину.
func (s *FileStore) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warnf("Failed to clear cart at %s: %v", s.path, err)
	}
}

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/example/ec-storefront/internal/model"
)

// Collection file names inside the data directory, one JSON array each.
const (
	ProductsFile        = "products.json"
	DeliveryOptionsFile = "deliveryOptions.json"
	CartFile            = "cart.json"
	OrdersFile          = "orders.json"
)

// FileStore persists each collection as a single JSON array in its own
// file. Every read loads the whole file and every save rewrites it.
//
// The mutex only prevents interleaved partial writes within this process.
// It is not transactional isolation: two concurrent mutations still race
// at the read-modify-write level and the last write wins.
type FileStore struct {
	mu  sync.RWMutex
	dir string
	log *logrus.Entry
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir: dir,
		log: logrus.WithField("component", "store"),
	}
}

func (fs *FileStore) LoadProducts() ([]model.Product, error) {
	var products []model.Product
	if err := fs.readCollection(ProductsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (fs *FileStore) LoadDeliveryOptions() ([]model.DeliveryOption, error) {
	var options []model.DeliveryOption
	if err := fs.readCollection(DeliveryOptionsFile, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (fs *FileStore) LoadCart() ([]model.CartItem, error) {
	var items []model.CartItem
	if err := fs.readCollection(CartFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (fs *FileStore) SaveCart(items []model.CartItem) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if items == nil {
		items = []model.CartItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal cart")
	}

	path := filepath.Join(fs.dir, CartFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", CartFile)
	}
	fs.log.WithField("items", len(items)).Debug("cart saved")
	return nil
}

func (fs *FileStore) LoadOrders() ([]model.Order, error) {
	var orders []model.Order
	if err := fs.readCollection(OrdersFile, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (fs *FileStore) readCollection(name string, out any) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(fs.dir, name))
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	return nil
}

package postgres

import (
	"gorm.io/gorm"

	"github.com/gurushop/commerce-ledger/internal/ports"
)

type Repositories struct {
	Favorites ports.FavoriteRepository
	Orders    ports.OrderRepository
	Users     ports.UserRepository
	Products  ports.ProductRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Favorites: &favoriteRepository{db: db},
		Orders:    &orderRepository{db: db},
		Users:     &userRepository{db: db},
		Products:  &productRepository{db: db},
	}
}

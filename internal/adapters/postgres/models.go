package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type userModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string    `gorm:"column:email"`
	Password  string    `gorm:"column:password"`
	Valid     bool      `gorm:"column:valid"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type orderModel struct {
	OrderID     uuid.UUID       `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID       `gorm:"column:user_id"`
	OrderAmount decimal.Decimal `gorm:"column:order_amount;type:numeric(12,2)"`
	AlreadyPay  bool            `gorm:"column:already_pay"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "order_list" }

type favoriteModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteModel) TableName() string { return "favorite_management" }

type productModel struct {
	ProductID   uuid.UUID       `gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductName string          `gorm:"column:product_name"`
	Model       string          `gorm:"column:model"`
	ListPrice   decimal.Decimal `gorm:"column:list_price;type:numeric(12,2)"`
	Valid       bool            `gorm:"column:valid"`
}

func (productModel) TableName() string { return "product" }

type productImgModel struct {
	ImgProductID   uuid.UUID `gorm:"column:img_product_id;type:uuid;primaryKey"`
	ProductImgPath string    `gorm:"column:product_img_path"`
}

func (productImgModel) TableName() string { return "product_img" }

package model

import "time"

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);not null"`
	NameNormalized string `gorm:"type:varchar(100);not null;uniqueIndex:ux_categories_name_normalized"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. Deleting a referenced category is rejected by the FK.
type ProductModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"type:varchar(200);not null"`
	NameNormalized string  `gorm:"type:varchar(200);not null;uniqueIndex:ux_products_name_normalized"`
	Description    string  `gorm:"type:text;not null;default:''"`
	Price          float64 `gorm:"type:numeric(18,2);not null;default:0;check:chk_products_price,price >= 0"`
	ImgURL         string  `gorm:"column:img_url;type:varchar(500);not null;default:''"`
	ImgKey         string  `gorm:"column:img_key;type:varchar(255);not null;default:''"`
	SKU            string  `gorm:"column:sku;type:varchar(100);not null;default:''"`
	Stock          int     `gorm:"not null;default:0;check:chk_products_stock,stock >= 0"`
	CategoryID     int64   `gorm:"not null;index:ix_products_category_id"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// All lists every model in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&RoleModel{},
		&UserRoleModel{},
		&CategoryModel{},
		&ProductModel{},
	}
}

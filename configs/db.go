package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Branch{},
		&entity.Menu{}, &entity.MenuOption{}, &entity.Option{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemOption{},
	)
}

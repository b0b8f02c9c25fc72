package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

// SeedAdmin creates the first HQ account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "HQ Admin",
		Role:     "hq",
	}
	return db.Create(&admin).Error
}

// SeedLookups seeds order statuses and a starter option catalog.
func SeedLookups() error {
	db := DB()

	// Order statuses
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Pending"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Preparing"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})

	// Toppings. Cheese and bacon charge per unit with their own caps;
	// everything else is a fixed single unit.
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Cheese", Category: entity.OptionTopping, Price: 500,
		QuantityPriced: true, MaxQuantity: 5, SortOrder: 1,
	})
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Bacon", Category: entity.OptionTopping, Price: 700,
		QuantityPriced: true, MaxQuantity: 3, SortOrder: 2,
	})
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Tomato", Category: entity.OptionTopping, Price: 300, MaxQuantity: 1, SortOrder: 3,
	})
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Onion", Category: entity.OptionTopping, Price: 200, MaxQuantity: 1, SortOrder: 4,
	})
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Pickle", Category: entity.OptionTopping, Price: 0, MaxQuantity: 1, SortOrder: 5,
	})

	// Set sides/drinks; defaults are free, swaps carry a delta.
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "French Fries", Category: entity.OptionSide, Price: 0,
		MaxQuantity: 1, IsDefault: true, SortOrder: 1,
	})
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Cheese Fries", Category: entity.OptionSide, Price: 500, MaxQuantity: 1, SortOrder: 2,
	})
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Cola", Category: entity.OptionDrink, Price: 0,
		MaxQuantity: 1, IsDefault: true, SortOrder: 1,
	})
	db.FirstOrCreate(&entity.Option{}, entity.Option{
		OptionName: "Ade", Category: entity.OptionDrink, Price: 500, MaxQuantity: 1, SortOrder: 2,
	})

	log.Println("lookup tables seeded")
	return nil
}

// SeedCatalog creates a starter branch and menu set on an empty database so a
// fresh install is usable without the HQ console.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Menu{}).Count(&count)
	if count > 0 {
		return nil
	}

	db.FirstOrCreate(&entity.Branch{}, entity.Branch{BranchName: "Gangnam", Address: "Seoul", Status: "open"})

	var toppings []entity.Option
	db.Where("category = ?", entity.OptionTopping).Find(&toppings)
	var swaps []entity.Option
	db.Where("category IN ?", []string{entity.OptionSide, entity.OptionDrink}).Find(&swaps)

	menus := []entity.Menu{
		{MenuName: "Classic Burger", Category: entity.CategoryBurger, Price: 5000, Options: toppings},
		{MenuName: "Double Burger", Category: entity.CategoryBurger, Price: 6500, Options: toppings},
		{MenuName: "Classic Set", Category: entity.CategorySet, Price: 8000, Options: append(append([]entity.Option{}, toppings...), swaps...)},
		{MenuName: "French Fries", Category: entity.CategorySide, Price: 2000},
		{MenuName: "Cola", Category: entity.CategoryDrink, Price: 1500},
	}
	for i := range menus {
		if err := db.Create(&menus[i]).Error; err != nil {
			return err
		}
	}

	log.Println("starter catalog seeded")
	return nil
}

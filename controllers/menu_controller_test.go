package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/repository"
	"github.com/shstksdbs/ERP-Project-sub001/services"
)

func newMenuRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.SetupJoinTable(&entity.Menu{}, "Options", &entity.MenuOption{}))
	require.NoError(t, db.AutoMigrate(&entity.Menu{}, &entity.Option{}))

	ctl := NewMenuController(services.NewMenuService(repository.NewMenuRepository(db)))

	r := gin.New()
	r.POST("/api/menus/:id/options/:optionId", ctl.AttachOption)
	r.DELETE("/api/menus/:id/options/:optionId", ctl.DetachOption)
	return r, db
}

func TestAttachOptionUsesPathParam(t *testing.T) {
	r, db := newMenuRouter(t)

	burger := entity.Menu{MenuName: "Classic Burger", Category: entity.CategoryBurger, Price: 5000}
	require.NoError(t, db.Create(&burger).Error)
	cheese := entity.Option{OptionName: "Cheese", Category: entity.OptionTopping, Price: 500, QuantityPriced: true, MaxQuantity: 5}
	tomato := entity.Option{OptionName: "Tomato", Category: entity.OptionTopping, Price: 300, MaxQuantity: 1}
	require.NoError(t, db.Create(&cheese).Error)
	require.NoError(t, db.Create(&tomato).Error)

	// A body naming a different option must not win over the path.
	body, _ := json.Marshal(gin.H{"optionId": tomato.ID, "sortOrder": 3})
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/menus/%d/options/%d", burger.ID, cheese.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var links []entity.MenuOption
	require.NoError(t, db.Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, cheese.ID, links[0].OptionID)
	assert.Equal(t, 3, links[0].SortOrder)
}

func TestAttachOptionWithoutBody(t *testing.T) {
	r, db := newMenuRouter(t)

	burger := entity.Menu{MenuName: "Classic Burger", Category: entity.CategoryBurger, Price: 5000}
	require.NoError(t, db.Create(&burger).Error)
	cheese := entity.Option{OptionName: "Cheese", Category: entity.OptionTopping, Price: 500, QuantityPriced: true, MaxQuantity: 5}
	require.NoError(t, db.Create(&cheese).Error)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/menus/%d/options/%d", burger.ID, cheese.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var link entity.MenuOption
	require.NoError(t, db.First(&link).Error)
	assert.Equal(t, cheese.ID, link.OptionID)
	assert.Equal(t, 0, link.SortOrder)

	// Attaching twice stays idempotent.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/menus/%d/options/%d", burger.ID, cheese.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	var count int64
	db.Model(&entity.MenuOption{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// Detach removes the link through the same path params.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/menus/%d/options/%d", burger.ID, cheese.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	db.Model(&entity.MenuOption{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

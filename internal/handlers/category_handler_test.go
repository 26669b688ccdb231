package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "mymoney/internal/errors"
	"mymoney/internal/models"
	"mymoney/internal/services"
)

type mockCategoryService struct {
	createCategoryFn    func(userID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	getUserCategoriesFn func(userID uint) ([]models.Category, error)
	getCategoryByIDFn   func(userID, categoryID uint) (*models.Category, error)
	updateCategoryFn    func(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error)
	deleteCategoryFn    func(userID, categoryID uint) error
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func (m *mockCategoryService) CreateCategory(userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	return m.createCategoryFn(userID, name, categoryType)
}

func (m *mockCategoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	return m.getUserCategoriesFn(userID)
}

func (m *mockCategoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	return m.getCategoryByIDFn(userID, categoryID)
}

func (m *mockCategoryService) UpdateCategory(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	return m.updateCategoryFn(userID, categoryID, name, categoryType)
}

func (m *mockCategoryService) DeleteCategory(userID, categoryID uint) error {
	return m.deleteCategoryFn(userID, categoryID)
}

func setupCategoryRouter(svc services.CategoryServicer) *gin.Engine {
	r := gin.New()
	r.Use(injectUserID(1))
	h := NewCategoryHandler(svc)
	r.GET("/api/categories", h.GetCategories)
	r.POST("/api/categories", h.CreateCategory)
	r.PUT("/api/categories/:id", h.UpdateCategory)
	r.DELETE("/api/categories/:id", h.DeleteCategory)
	return r
}

func TestCategoryHandlerList(t *testing.T) {
	svc := &mockCategoryService{
		getUserCategoriesFn: func(userID uint) ([]models.Category, error) {
			return []models.Category{
				{UserID: userID, Name: "Salary", Type: models.CategoryTypeIncome},
				{UserID: userID, Name: "Food", Type: models.CategoryTypeExpense},
			}, nil
		},
	}
	r := setupCategoryRouter(svc)

	w := doRequest(r, http.MethodGet, "/api/categories", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp []models.Category
	parseJSON(t, w, &resp)
	if len(resp) != 2 {
		t.Errorf("expected 2 categories, got %d", len(resp))
	}
}

func TestCategoryHandlerCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
				category := &models.Category{UserID: userID, Name: name, Type: categoryType}
				category.ID = 3
				return category, nil
			},
		}
		r := setupCategoryRouter(svc)

		w := doRequest(r, http.MethodPost, "/api/categories", gin.H{
			"name": "Groceries",
			"type": "expense",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid_type_rejected_by_binding", func(t *testing.T) {
		r := setupCategoryRouter(&mockCategoryService{})

		w := doRequest(r, http.MethodPost, "/api/categories", gin.H{
			"name": "Groceries",
			"type": "transfer",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		r := setupCategoryRouter(&mockCategoryService{})

		w := doRequest(r, http.MethodPost, "/api/categories", gin.H{"type": "expense"})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
	})
}

func TestCategoryHandlerUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockCategoryService{
			updateCategoryFn: func(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
				category := &models.Category{UserID: userID, Name: name, Type: categoryType}
				category.ID = categoryID
				return category, nil
			},
		}
		r := setupCategoryRouter(svc)

		w := doRequest(r, http.MethodPut, "/api/categories/3", gin.H{
			"name": "Dining Out",
			"type": "expense",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("type_change_rejected", func(t *testing.T) {
		svc := &mockCategoryService{
			updateCategoryFn: func(userID, categoryID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
				return nil, apperrors.ErrCategoryTypeImmutable
			},
		}
		r := setupCategoryRouter(svc)

		w := doRequest(r, http.MethodPut, "/api/categories/3", gin.H{
			"name": "Side Income",
			"type": "income",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "CATEGORY_TYPE_IMMUTABLE" {
			t.Errorf("expected CATEGORY_TYPE_IMMUTABLE, got %s", code)
		}
	})

	t.Run("bad_path_id", func(t *testing.T) {
		r := setupCategoryRouter(&mockCategoryService{})

		w := doRequest(r, http.MethodPut, "/api/categories/abc", gin.H{
			"name": "Dining Out",
			"type": "expense",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
	})
}

func TestCategoryHandlerDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(userID, categoryID uint) error {
				return nil
			},
		}
		r := setupCategoryRouter(svc)

		w := doRequest(r, http.MethodDelete, "/api/categories/3", nil)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", w.Code)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		svc := &mockCategoryService{
			deleteCategoryFn: func(userID, categoryID uint) error {
				return apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(svc)

		w := doRequest(r, http.MethodDelete, "/api/categories/99", nil)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", w.Code)
		}
	})
}

package services

import (
	"context"
	"strings"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/events"
	"pocketledger/internal/models"
)

// defaultCategories are written the first time the category list is read.
var defaultCategories = []models.Category{
	{Name: "Food & Dining", Type: models.CategoryTypeExpense, Icon: "utensils", Color: "#F97316"},
	{Name: "Transport", Type: models.CategoryTypeExpense, Icon: "car", Color: "#3B82F6"},
	{Name: "Shopping", Type: models.CategoryTypeExpense, Icon: "shopping-bag", Color: "#EC4899"},
	{Name: "Bills & Utilities", Type: models.CategoryTypeExpense, Icon: "receipt", Color: "#EAB308"},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Icon: "film", Color: "#8B5CF6"},
	{Name: "Health", Type: models.CategoryTypeExpense, Icon: "heart-pulse", Color: "#EF4444"},
	{Name: "Education", Type: models.CategoryTypeExpense, Icon: "book", Color: "#14B8A6"},
	{Name: "Other", Type: models.CategoryTypeExpense, Icon: "ellipsis", Color: "#6B7280"},
	{Name: "Salary", Type: models.CategoryTypeIncome, Icon: "briefcase", Color: "#22C55E"},
	{Name: "Freelance", Type: models.CategoryTypeIncome, Icon: "laptop", Color: "#10B981"},
	{Name: "Investments", Type: models.CategoryTypeIncome, Icon: "trending-up", Color: "#0EA5E9"},
	{Name: "Other Income", Type: models.CategoryTypeIncome, Icon: "plus", Color: "#84CC16"},
}

// categoryService handles category-related business logic.
type categoryService struct {
	core *Core
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(core *Core) CategoryServicer {
	return &categoryService{core: core}
}

// categories returns the category list, seeding the defaults on first use.
func (c *Core) categories(ctx context.Context) ([]models.Category, error) {
	categories, seeded, err := c.records.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if seeded {
		return categories, nil
	}

	now := c.now()
	categories = make([]models.Category, len(defaultCategories))
	for i, def := range defaultCategories {
		def.IsDefault = true
		def.Init(now)
		categories[i] = def
	}
	if err := c.records.SaveCategories(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Core) findCategory(ctx context.Context, id string) (*models.Category, error) {
	categories, err := c.categories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, apperrors.ErrCategoryNotFound
}

// categoryName returns the display name for id, or "" when it is unknown.
func (c *Core) categoryName(ctx context.Context, id string) string {
	cat, err := c.findCategory(ctx, id)
	if err != nil {
		return ""
	}
	return cat.Name
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if !categoryType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}

	var created models.Category
	err := s.core.exclusive(ctx, func() error {
		categories, err := s.core.categories(ctx)
		if err != nil {
			return err
		}
		for _, c := range categories {
			if c.Type == categoryType && strings.EqualFold(c.Name, name) {
				return apperrors.ErrDuplicateCategory
			}
		}

		created = models.Category{Name: name, Type: categoryType, Icon: icon, Color: color}
		created.Init(s.core.now())
		if err := s.core.records.SaveCategories(ctx, append(categories, created)); err != nil {
			return err
		}

		s.core.publish(events.CategoryUpdated, map[string]any{"id": created.ID})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListCategories returns every category, optionally filtered by type.
func (s *categoryService) ListCategories(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error) {
	var result []models.Category
	err := s.core.exclusive(ctx, func() error {
		categories, err := s.core.categories(ctx)
		if err != nil {
			return err
		}
		if categoryType == nil {
			result = categories
			return nil
		}
		result = make([]models.Category, 0, len(categories))
		for _, c := range categories {
			if c.Type == *categoryType {
				result = append(result, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var cat *models.Category
	err := s.core.exclusive(ctx, func() error {
		var err error
		cat, err = s.core.findCategory(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteCategory removes a category that nothing references. Transactions,
// budgets and active autopays all pin their category.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.core.exclusive(ctx, func() error {
		categories, err := s.core.categories(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range categories {
			if categories[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return apperrors.ErrCategoryNotFound
		}

		inUse, err := s.core.categoryInUse(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return apperrors.ErrCategoryInUse
		}

		categories = append(categories[:idx], categories[idx+1:]...)
		if err := s.core.records.SaveCategories(ctx, categories); err != nil {
			return err
		}

		s.core.publish(events.CategoryUpdated, map[string]any{"id": id, "deleted": true})
		return nil
	})
}

func (c *Core) categoryInUse(ctx context.Context, id string) (bool, error) {
	txs, err := c.records.Transactions(ctx)
	if err != nil {
		return false, err
	}
	for _, tx := range txs {
		if tx.CategoryID == id {
			return true, nil
		}
	}

	budgets, err := c.records.Budgets(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range budgets {
		if b.CategoryID == id {
			return true, nil
		}
	}

	autopays, err := c.records.Autopays(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range autopays {
		if a.IsActive && a.CategoryID == id {
			return true, nil
		}
	}
	return false, nil
}

package recipe

import (
	"Recipe-Sharing-API/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	lockForUpdate = "UPDATE"
	lockForShare  = "SHARE"
)

type (
	RecipeRepository interface {
		// Transaction runs fn against a repository bound to a single database
		// transaction. Returning an error from fn rolls it back.
		Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error

		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		LockRecipeByID(ctx context.Context, id uuid.UUID, strength string) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id uuid.UUID, updates map[string]any) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func orderedDirections(db *gorm.DB) *gorm.DB {
	return db.Order("step_number asc")
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}

// CreateRecipe inserts the recipe together with its Directions.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Directions", orderedDirections).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// LockRecipeByID is GetRecipeByID with a row lock held until the surrounding
// transaction ends. Only meaningful inside Transaction.
func (r *recipeRepository) LockRecipeByID(ctx context.Context, id uuid.UUID, strength string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: strength}).
		Preload("Directions", orderedDirections).
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Directions", orderedDirections).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetPublicRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Directions", orderedDirections).
		Where("is_public = ?", true).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// DeleteRecipe removes the recipe and all of its directions.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Direction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

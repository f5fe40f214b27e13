package domain

import (
	"errors"
	"time"
)

// CopyTitleSuffix is appended to the title of a copied recipe.
const CopyTitleSuffix = " (Copy)"

var (
	MessageSuccessCreateRecipe = "Recipe created successfully"
	MessageSuccessGetRecipes   = "Recipes fetched successfully"
	MessageSuccessGetRecipe    = "Recipe fetched successfully"
	MessageSuccessUpdateRecipe = "Recipe updated successfully"
	MessageSuccessDeleteRecipe = "Recipe deleted successfully"
	MessageSuccessCopyRecipe   = "Recipe copied successfully"

	MessageFailedCreateRecipe   = "Failed to create recipe"
	MessageFailedGetRecipes     = "Failed to get recipes"
	MessageFailedGetRecipe      = "Failed to get recipe"
	MessageFailedUpdateRecipe   = "Failed to update recipe"
	MessageFailedDeleteRecipe   = "Failed to delete recipe"
	MessageFailedCopyRecipe     = "Failed to copy recipe"
	MessageRecipeIDRequired     = "Recipe ID is required"
	MessageRecipeUserIDRequired = "Recipe ID and User ID are required"
	MessageRecipeNotFound       = "Recipe not found"
	MessageRecipeNotOwned       = "Recipe not found or not owned by user"
	MessageCannotCopyRecipe     = "Cannot copy this recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrRecipeNotFoundOrNotOwned = errors.New("recipe not found or not owned by user")
	ErrCannotCopyRecipe         = errors.New("recipe does not exist or is not public")
	ErrInvalidStepNumber        = errors.New("step number must be positive")
	ErrDuplicateStepNumber      = errors.New("duplicate step number")
	ErrEmptyInstruction         = errors.New("direction instruction is required")
)

type (
	DirectionRequest struct {
		StepNumber  int    `json:"stepNumber"`
		Instruction string `json:"instruction"`
	}

	CreateRecipeRequest struct {
		UserID         string             `json:"userId" validate:"required,uuid"`
		Title          string             `json:"title"`
		Description    string             `json:"description"`
		IsPublic       bool               `json:"isPublic"`
		ParentRecipeID *string            `json:"parentRecipeId" validate:"omitempty,uuid"`
		Directions     []DirectionRequest `json:"directions"`
	}

	// UpdateRecipeRequest carries only the mutable scalar fields; nil means
	// keep the stored value.
	UpdateRecipeRequest struct {
		UserID      string  `json:"userId" validate:"required,uuid"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
		IsPublic    *bool   `json:"isPublic"`
	}

	RecipeOwnerRequest struct {
		UserID string `json:"userId" validate:"required,uuid"`
	}

	Direction struct {
		ID          string `json:"id"`
		RecipeID    string `json:"recipeId"`
		StepNumber  int    `json:"stepNumber"`
		Instruction string `json:"instruction"`
	}

	Recipe struct {
		ID             string      `json:"id"`
		UserID         string      `json:"userId"`
		Title          string      `json:"title"`
		Description    string      `json:"description"`
		IsPublic       bool        `json:"isPublic"`
		ParentRecipeID *string     `json:"parentRecipeId"`
		Directions     []Direction `json:"directions"`
		CreatedAt      time.Time   `json:"createdAt"`
		UpdatedAt      time.Time   `json:"updatedAt"`
	}
)

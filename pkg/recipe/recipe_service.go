package recipe

import (
	"Recipe-Sharing-API/domain"
	"Recipe-Sharing-API/entities"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)
		GetRecipeByID(ctx context.Context, recipeID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) (bool, error)
		CopyRecipe(ctx context.Context, recipeID string, userID string) (domain.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
	}
}

func parseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: user id: %w", domain.ErrValidation, domain.ErrParseUUID)
	}
	return id, nil
}

// buildDirections assigns each step its explicit number or, when zero, its
// 1-based position in reqs.
func buildDirections(reqs []domain.DirectionRequest) ([]*entities.Direction, error) {
	directions := make([]*entities.Direction, 0, len(reqs))
	seen := make(map[int]struct{}, len(reqs))

	for i, req := range reqs {
		step := req.StepNumber
		if step == 0 {
			step = i + 1
		}
		if step < 0 {
			return nil, fmt.Errorf("%w: %w: %d", domain.ErrValidation, domain.ErrInvalidStepNumber, step)
		}
		if strings.TrimSpace(req.Instruction) == "" {
			return nil, fmt.Errorf("%w: %w: step %d", domain.ErrValidation, domain.ErrEmptyInstruction, step)
		}
		if _, ok := seen[step]; ok {
			return nil, fmt.Errorf("%w: %w: %d", domain.ErrValidation, domain.ErrDuplicateStepNumber, step)
		}
		seen[step] = struct{}{}

		directions = append(directions, &entities.Direction{
			StepNumber:  step,
			Instruction: req.Instruction,
		})
	}

	return directions, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.Recipe, error) {
	ownerID, err := parseUserID(req.UserID)
	if err != nil {
		return domain.Recipe{}, err
	}

	directions, err := buildDirections(req.Directions)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		Directions:  directions,
	}

	if req.ParentRecipeID != nil && *req.ParentRecipeID != "" {
		parentID, err := uuid.Parse(*req.ParentRecipeID)
		if err != nil {
			return domain.Recipe{}, fmt.Errorf("%w: parent recipe id: %w", domain.ErrValidation, domain.ErrParseUUID)
		}
		recipe.ParentRecipeID = &parentID
	}

	var created *entities.Recipe
	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if err := repo.CreateRecipe(ctx, recipe); err != nil {
			return err
		}
		created, err = repo.GetRecipeByID(ctx, recipe.ID)
		return err
	})
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}

	return toRecipeResponse(created), nil
}

// GetRecipes returns every recipe owned by userID, or only public recipes
// when userID is empty.
func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	var (
		recipes []*entities.Recipe
		err     error
	)

	if userID == "" {
		recipes, err = s.recipeRepository.GetPublicRecipes(ctx)
	} else {
		ownerID, parseErr := uuid.Parse(userID)
		if parseErr != nil {
			// no recipe can be owned by a malformed id
			return []domain.Recipe{}, nil
		}
		recipes, err = s.recipeRepository.GetRecipesByUser(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, nil
}

// GetRecipeByID does not filter on visibility: any caller holding an id can
// read the recipe.
func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID string) (domain.Recipe, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.Recipe{}, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, fmt.Errorf("get recipe: %w", err)
	}

	return toRecipeResponse(recipe), nil
}

// lockOwned loads and locks the recipe for update. Missing and not-owned
// recipes both come back as ErrRecipeNotFoundOrNotOwned.
func lockOwned(ctx context.Context, repo RecipeRepository, id, userID uuid.UUID) (*entities.Recipe, error) {
	recipe, err := repo.LockRecipeByID(ctx, id, lockForUpdate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFoundOrNotOwned
		}
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, domain.ErrRecipeNotFoundOrNotOwned
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (domain.Recipe, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return domain.Recipe{}, err
	}
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.Recipe{}, domain.ErrRecipeNotFoundOrNotOwned
	}

	var updated *entities.Recipe
	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		existing, err := lockOwned(ctx, repo, id, userID)
		if err != nil {
			return err
		}

		updates := map[string]any{
			"title":       existing.Title,
			"description": existing.Description,
			"is_public":   existing.IsPublic,
			"updated_at":  time.Now(),
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.IsPublic != nil {
			updates["is_public"] = *req.IsPublic
		}

		if err := repo.UpdateRecipe(ctx, id, updates); err != nil {
			return err
		}

		updated, err = repo.GetRecipeByID(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFoundOrNotOwned) {
			return domain.Recipe{}, err
		}
		return domain.Recipe{}, fmt.Errorf("update recipe: %w", err)
	}

	return toRecipeResponse(updated), nil
}

// DeleteRecipe reports false, without error, when the recipe is missing or
// belongs to someone else.
func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) (bool, error) {
	ownerID, err := parseUserID(userID)
	if err != nil {
		return false, err
	}
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return false, nil
	}

	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		if _, err := lockOwned(ctx, repo, id, ownerID); err != nil {
			return err
		}
		return repo.DeleteRecipe(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFoundOrNotOwned) {
			return false, nil
		}
		return false, fmt.Errorf("delete recipe: %w", err)
	}

	return true, nil
}

// CopyRecipe duplicates a public recipe, with its directions, as a private
// recipe of userID whose parent is the source.
func (s *recipeService) CopyRecipe(ctx context.Context, recipeID string, userID string) (domain.Recipe, error) {
	ownerID, err := parseUserID(userID)
	if err != nil {
		return domain.Recipe{}, err
	}
	sourceID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.Recipe{}, domain.ErrCannotCopyRecipe
	}

	var copied *entities.Recipe
	err = s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		source, err := repo.LockRecipeByID(ctx, sourceID, lockForShare)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCannotCopyRecipe
			}
			return err
		}
		if !source.IsPublic {
			return domain.ErrCannotCopyRecipe
		}

		directions := make([]*entities.Direction, 0, len(source.Directions))
		for _, d := range source.Directions {
			directions = append(directions, &entities.Direction{
				StepNumber:  d.StepNumber,
				Instruction: d.Instruction,
			})
		}

		parentID := source.ID
		recipe := &entities.Recipe{
			UserID:         ownerID,
			Title:          source.Title + domain.CopyTitleSuffix,
			Description:    source.Description,
			IsPublic:       false,
			ParentRecipeID: &parentID,
			Directions:     directions,
		}
		if err := repo.CreateRecipe(ctx, recipe); err != nil {
			return err
		}

		copied, err = repo.GetRecipeByID(ctx, recipe.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrCannotCopyRecipe) {
			return domain.Recipe{}, err
		}
		return domain.Recipe{}, fmt.Errorf("copy recipe: %w", err)
	}

	return toRecipeResponse(copied), nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.Recipe {
	res := domain.Recipe{
		ID:          recipe.ID.String(),
		UserID:      recipe.UserID.String(),
		Title:       recipe.Title,
		Description: recipe.Description,
		IsPublic:    recipe.IsPublic,
		Directions:  make([]domain.Direction, 0, len(recipe.Directions)),
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
	if recipe.ParentRecipeID != nil {
		parentID := recipe.ParentRecipeID.String()
		res.ParentRecipeID = &parentID
	}
	for _, d := range recipe.Directions {
		res.Directions = append(res.Directions, domain.Direction{
			ID:          d.ID.String(),
			RecipeID:    d.RecipeID.String(),
			StepNumber:  d.StepNumber,
			Instruction: d.Instruction,
		})
	}
	return res
}

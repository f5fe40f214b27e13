// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	Title          string     `json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	IsPublic       bool       `gorm:"not null;default:false;index" json:"isPublic"`
	ParentRecipeID *uuid.UUID `gorm:"type:uuid;index" json:"parentRecipeId"`

	User       *User        `gorm:"foreignKey:UserID" json:"-"`
	Directions []*Direction `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"directions"`
	Timestamp
}

func (r *Recipe) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Direction is one numbered instruction step of a recipe.
type Direction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_direction_recipe_step" json:"recipeId"`
	StepNumber  int       `gorm:"not null;uniqueIndex:idx_direction_recipe_step" json:"stepNumber"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
}

func (d *Direction) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

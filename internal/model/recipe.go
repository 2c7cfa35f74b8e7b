package model

import (
	"github.com/google/uuid"
)

// Image names resolved by the UI resource registry
const (
	ImageStrawberryPie = "strawberry_pie"
	ImageFlour         = "flour"
	ImageEggs          = "eggs"
	ImageJuice         = "juice"
	ImageStrawberry    = "strawberry"
	ImageSugar         = "sugar"
	ImageMint          = "mint"
	ImageChocolate     = "chocolate"
	ImageJam           = "jam"
)

// recipeNamespace scopes name-based recipe IDs
var recipeNamespace = uuid.MustParse("6f1c1d9e-3b0a-4e55-9a53-7c1f2b8d4e10")

// Ingredient is a single card in the ingredients grid
type Ingredient struct {
	Image    string // resource name, resolved by the UI
	Title    string
	Subtitle string
}

// Recipe is the display record for the recipe screen.
// Values are built once and never mutated afterwards.
type Recipe struct {
	Title       string
	Description string
	Category    string
	HeroImage   string
	CookingTime string // pre-formatted, e.g. "50 min"
	Energy      string
	Rating      string
	Ingredients []Ingredient
}

// ID returns a stable identifier derived from the recipe title.
// It is only used to tag log entries.
func (r Recipe) ID() uuid.UUID {
	return uuid.NewSHA1(recipeNamespace, []byte(r.Title))
}

// HasIngredients reports whether the ingredients grid has anything to show
func (r Recipe) HasIngredients() bool {
	return len(r.Ingredients) > 0
}

// StrawberryCake returns the demo recipe shown by the app.
// A fresh value is built on every call.
func StrawberryCake() Recipe {
	return Recipe{
		Title:    "Strawberry Cake",
		Category: "Desserts",
		Description: "This dessert is very tasty and not difficult to prepare. " +
			"Also, you can replace strawberries with any other berry you like.",
		HeroImage:   ImageStrawberryPie,
		CookingTime: "50 min",
		Energy:      "620 kcal",
		Rating:      "4,9",
		Ingredients: []Ingredient{
			{Image: ImageFlour, Title: "Flour", Subtitle: "450 g"},
			{Image: ImageEggs, Title: "Eggs", Subtitle: "4"},
			{Image: ImageJuice, Title: "Lemon juice", Subtitle: "150 g"},
			{Image: ImageStrawberry, Title: "Strawberry", Subtitle: "200 g"},
			{Image: ImageSugar, Title: "Sugar", Subtitle: "1 cup"},
			{Image: ImageMint, Title: "Mint", Subtitle: "20 g"},
			{Image: ImageChocolate, Title: "Chocolate", Subtitle: "30 g"},
			{Image: ImageJam, Title: "Strawberry jam", Subtitle: "2 tbsp"},
		},
	}
}

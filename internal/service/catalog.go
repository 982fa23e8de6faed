package service

// Meal is one slot of a day plan.
type Meal struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// DayPlan is one labeled day of the meal plan.
type DayPlan struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// DietPlan is one canned recommendation bundle: substitute foods, a
// multi-day meal plan and supplement suggestions.
type DietPlan struct {
	Alternatives    []string  `json:"alternatives"`
	MealPlan        []DayPlan `json:"meal_plan"`
	Supplementation []string  `json:"supplementation"`
}

// dietPlanCatalog is the fixed process-lifetime catalog of recommendation
// bundles, keyed by canonical allergen keyword plus the default fallback.
// Data only; the selection rule lives in DietPlanService.
var dietPlanCatalog = map[string]*DietPlan{
	"peanuts": {
		Alternatives: []string{"Sunflower seed butter", "Almond butter", "Tahini (sesame seed paste)"},
		MealPlan: []DayPlan{
			{
				Day: "Monday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Oatmeal with almond milk", "Sliced bananas", "Honey"}},
					{Name: "Lunch", Items: []string{"Grilled chicken salad", "Olive oil dressing", "Fresh fruit"}},
					{Name: "Dinner", Items: []string{"Baked salmon", "Quinoa", "Steamed vegetables"}},
					{Name: "Snack", Items: []string{"Apple slices with sunflower seed butter"}},
				},
			},
			{
				Day: "Tuesday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Yogurt with berries", "Granola (peanut-free)"}},
					{Name: "Lunch", Items: []string{"Turkey and avocado wrap", "Carrot sticks", "Hummus"}},
					{Name: "Dinner", Items: []string{"Beef stir-fry with broccoli", "Brown rice"}},
					{Name: "Snack", Items: []string{"Rice cakes with almond butter"}},
				},
			},
		},
		Supplementation: []string{"Vitamin E", "Niacin", "Magnesium"},
	},
	"milk": {
		Alternatives: []string{"Almond milk", "Oat milk", "Coconut milk", "Soy milk"},
		MealPlan: []DayPlan{
			{
				Day: "Monday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Oatmeal with oat milk", "Sliced bananas", "Cinnamon"}},
					{Name: "Lunch", Items: []string{"Grilled chicken salad", "Olive oil dressing", "Fresh fruit"}},
					{Name: "Dinner", Items: []string{"Baked salmon", "Quinoa", "Steamed vegetables"}},
					{Name: "Snack", Items: []string{"Dairy-free dark chocolate"}},
				},
			},
			{
				Day: "Tuesday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Avocado toast", "Dairy-free smoothie"}},
					{Name: "Lunch", Items: []string{"Lentil soup", "Green salad", "Olive oil dressing"}},
					{Name: "Dinner", Items: []string{"Grilled chicken", "Sweet potato", "Green beans"}},
					{Name: "Snack", Items: []string{"Fruit and nut mix"}},
				},
			},
		},
		Supplementation: []string{"Calcium", "Vitamin D", "Vitamin B12"},
	},
	"soy": {
		Alternatives: []string{"Coconut aminos (instead of soy sauce)", "Chickpeas", "Lentils", "Hemp seeds"},
		MealPlan: []DayPlan{
			{
				Day: "Monday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Oatmeal with almond milk", "Fresh berries"}},
					{Name: "Lunch", Items: []string{"Chicken and vegetable soup", "Gluten-free crackers"}},
					{Name: "Dinner", Items: []string{"Grilled fish", "Roasted vegetables", "Quinoa"}},
					{Name: "Snack", Items: []string{"Apple with almond butter"}},
				},
			},
			{
				Day: "Tuesday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Veggie omelet", "Gluten-free toast"}},
					{Name: "Lunch", Items: []string{"Tuna salad with olive oil", "Mixed greens"}},
					{Name: "Dinner", Items: []string{"Beef stir-fry with coconut aminos", "Cauliflower rice"}},
					{Name: "Snack", Items: []string{"Vegetable sticks with hummus"}},
				},
			},
		},
		Supplementation: []string{"Iron", "Calcium", "Protein supplements"},
	},
	"default": {
		Alternatives: []string{"Focus on whole, unprocessed foods", "Cook meals from scratch", "Read labels carefully"},
		MealPlan: []DayPlan{
			{
				Day: "Monday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Fruit smoothie with protein powder", "Chia seeds"}},
					{Name: "Lunch", Items: []string{"Simple protein with vegetables", "Olive oil dressing"}},
					{Name: "Dinner", Items: []string{"Lean protein", "Steamed vegetables", "Brown rice"}},
					{Name: "Snack", Items: []string{"Fresh fruit"}},
				},
			},
			{
				Day: "Tuesday",
				Meals: []Meal{
					{Name: "Breakfast", Items: []string{"Oatmeal with fruit", "Seeds"}},
					{Name: "Lunch", Items: []string{"Homemade soup", "Side salad"}},
					{Name: "Dinner", Items: []string{"Baked protein", "Roasted vegetables", "Quinoa"}},
					{Name: "Snack", Items: []string{"Vegetable sticks"}},
				},
			},
		},
		Supplementation: []string{"Consult with a nutritionist", "Multivitamin", "Omega-3 fatty acids"},
	},
}

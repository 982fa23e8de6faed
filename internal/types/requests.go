package types

// RegisterRequest represents a patient registration request
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Birthdate string `json:"birthdate" binding:"required"`
	Age       int    `json:"age" binding:"required"`
	Weight    int    `json:"weight" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Allergies string `json:"allergies"`
	Symptoms  string `json:"symptoms"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest updates the stored allergies/symptoms strings.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	Allergies *string `json:"allergies,omitempty"`
	Symptoms  *string `json:"symptoms,omitempty"`
}

// AnalyzeIngredientsRequest is the manual-input analysis request
type AnalyzeIngredientsRequest struct {
	FoodName    string `json:"food_name"`
	Ingredients string `json:"ingredients"`
}

// AnalyzeBarcodeRequest triggers the stubbed barcode analysis for a
// previously uploaded image
type AnalyzeBarcodeRequest struct {
	UploadID string `json:"upload_id"`
}

// SaveAnalysisRequest appends an analysis record to the history log
type SaveAnalysisRequest struct {
	FoodName  string   `json:"food_name"`
	Allergens []string `json:"allergens" binding:"required"`
	Severity  string   `json:"severity" binding:"required"`
}

// ChatMessageRequest submits a chat utterance
type ChatMessageRequest struct {
	Text string `json:"text"`
}

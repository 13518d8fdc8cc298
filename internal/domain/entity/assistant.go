package entity

const (
	AssistOptimizeTitle       = "optimize_title"
	AssistOptimizeDescription = "optimize_description"
	AssistSmartAutofill       = "smart_autofill"
)

type AssistRequest struct {
	Action      string `json:"action"`
	CurrentData string `json:"currentData"`
	Category    string `json:"category"`
}

type AssistResult struct {
	Success  bool          `json:"success"`
	Data     string        `json:"data,omitempty"`
	Error    string        `json:"error,omitempty"`
	IsDemo   bool          `json:"isDemo,omitempty"`
	Autofill *AutofillData `json:"autofill,omitempty"`
}

// AutofillData is the JSON object the smart_autofill prompt asks the model to return.
type AutofillData struct {
	OptimizedTitle   string        `json:"optimized_title"`
	ShortDescription string        `json:"short_description"`
	Specs            AutofillSpecs `json:"specs"`
}

type AutofillSpecs struct {
	Brand         string  `json:"brand"`
	ModelNumber   string  `json:"model_number"`
	Color         string  `json:"color"`
	ProcessorType string  `json:"processor_type"`
	RAMSize       float64 `json:"ram_size"`
	SSDCapacity   float64 `json:"ssd_capacity"`
	ScreenSize    float64 `json:"screen_size"`
	Condition     string  `json:"condition"`
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"laptek/internal/domain/entity"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
)

const missingAPIKeyMessage = "Missing GEMINI_API_KEY"

type AssistantUseCase struct {
	generator TextGenerator
	models    []string
}

// NewAssistantUseCase accepts a nil generator; requests then get the demo response.
func NewAssistantUseCase(generator TextGenerator, models []string) *AssistantUseCase {
	return &AssistantUseCase{
		generator: generator,
		models:    models,
	}
}

func (uc *AssistantUseCase) Assist(ctx context.Context, req entity.AssistRequest) (*entity.AssistResult, error) {
	if uc.generator == nil {
		return &entity.AssistResult{Success: false, Error: missingAPIKeyMessage, IsDemo: true}, nil
	}

	prompt, ok := buildPrompt(req)
	if !ok {
		return nil, errors.BadRequest(fmt.Sprintf("Unknown action: %s", req.Action), nil)
	}

	var lastErr error
	for _, model := range uc.models {
		logger.Debug("Trying model: %s", model)
		text, err := uc.generator.Generate(ctx, model, prompt)
		if err != nil {
			logger.Warn("Model %s failed: %v", model, err)
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		logger.Info("Success with model: %s", model)
		result := &entity.AssistResult{Success: true, Data: text}
		if req.Action == entity.AssistSmartAutofill {
			autofill, err := parseAutofill(text)
			if err != nil {
				logger.Warn("Autofill response from %s was not valid JSON: %v", model, err)
			}
			result.Autofill = autofill
		}
		return result, nil
	}

	message := "All models failed. Last error: Unknown error"
	if lastErr != nil {
		message = fmt.Sprintf("All models failed. Last error: %v", lastErr)
	}
	message += ". Please verify your API key at https://aistudio.google.com/app/apikey"
	return nil, errors.New("AI_ERROR", message, http.StatusInternalServerError, lastErr)
}

// parseAutofill extracts the JSON object from a model reply that may be fenced
// or wrapped in prose.
func parseAutofill(text string) (*entity.AutofillData, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var data entity.AutofillData
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func buildPrompt(req entity.AssistRequest) (string, bool) {
	switch req.Action {
	case entity.AssistOptimizeTitle:
		return fmt.Sprintf(optimizeTitlePrompt, req.Category, req.CurrentData), true
	case entity.AssistOptimizeDescription:
		return fmt.Sprintf(optimizeDescriptionPrompt, req.Category, req.CurrentData), true
	case entity.AssistSmartAutofill:
		return fmt.Sprintf(smartAutofillPrompt, req.Category, req.CurrentData), true
	}
	return "", false
}

const optimizeTitlePrompt = `You are an expert e-commerce SEO specialist.

Product Category: "%s"
Current Title: "%s"

Task: Rewrite this product title to be highly SEO-optimized following these rules:
1. Include the brand name at the start
2. Include key specifications (processor, RAM, storage, screen size if applicable)
3. Include the model number/name
4. Add 1-2 high-value keywords that customers search for
5. Keep it under 100 characters
6. Make it compelling and professional
7. Use proper capitalization

Format: Return ONLY the optimized title as plain text, no quotes or extra formatting.

Example good title: "Dell XPS 15 9530 Laptop - Intel i9-13900H, 32GB RAM, 1TB SSD, 15.6" OLED Display"`

const optimizeDescriptionPrompt = `You are an expert e-commerce copywriter specializing in SEO-optimized product descriptions.

Product Category: "%s"
Product Title: "%s"

Task: Write a compelling, SEO-optimized product description following these rules:
1. Start with a strong benefit-driven opening sentence
2. Include 3-5 key features or specifications
3. Highlight what makes this product stand out
4. Use power words that drive conversions (premium, professional, powerful, efficient, etc.)
5. Include relevant keywords naturally
6. Keep it between 200-400 characters
7. Make it scannable and easy to read
8. End with a subtle call-to-action or value proposition

Format: Return ONLY the description as plain text, no quotes or extra formatting.

Example: "Experience unmatched performance with this premium laptop featuring cutting-edge Intel i9 processor and stunning OLED display. Perfect for professionals and creators who demand the best. Includes 32GB RAM for seamless multitasking and 1TB SSD for lightning-fast storage. Sleek design meets powerful performance."`

const smartAutofillPrompt = `You are an expert e-commerce product manager.

Product Category: "%s"
User Input: "%s"

Task: Based on the user input, generate a complete product listing.
Return a JSON object exactly like this:
{
    "optimized_title": "SEO-friendly title including brand, model, and key specs",
    "short_description": "Compelling 200-400 character sales-oriented description",
    "specs": {
        "brand": "string",
        "model_number": "string",
        "color": "string",
        "processor_type": "string",
        "ram_size": number (just the digits, in GB),
        "ssd_capacity": number (just the digits, in GB),
        "screen_size": number (in inches),
        "condition": "Brand New, Open Box, or Refurbished Excellent"
    }
}

Rules for Title: Include brand, model, CPU, RAM, SSD.
Rules for Description: Benefit-driven, professional, includes keywords.
Rules for Specs: Extract accurately from input. If missing, make an educated guess based on model.

Return ONLY the raw JSON.`

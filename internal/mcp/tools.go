package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deckforge/deckforge/internal/deck"
)

// GenerateInput defines the generate_pitch_deck input schema.
type GenerateInput struct {
	CompanyName string `json:"company_name" jsonschema:"Name of the company/startup"`
	Description string `json:"description" jsonschema:"What the company does, its value proposition"`
	Industry    string `json:"industry,omitempty" jsonschema:"Industry/vertical (e.g. fintech, healthtech, edtech)"`
	Stage       string `json:"stage,omitempty" jsonschema:"Funding stage (e.g. pre-seed, seed, Series A)"`
	AskAmount   string `json:"ask_amount,omitempty" jsonschema:"How much they're raising (e.g. $2M)"`
	Traction    string `json:"traction,omitempty" jsonschema:"Key traction metrics (e.g. 50K users, $1M ARR)"`
}

// UpdateSlideInput defines the update_slide input schema.
type UpdateSlideInput struct {
	SlideIndex int      `json:"slide_index" jsonschema:"0-based index of the slide to update"`
	Title      *string  `json:"title,omitempty" jsonschema:"New title for the slide"`
	Content    *string  `json:"content,omitempty" jsonschema:"New body content"`
	Bullets    []string `json:"bullets,omitempty" jsonschema:"New bullet points"`
}

// AddSlideInput defines the add_slide input schema.
type AddSlideInput struct {
	Title     string   `json:"title" jsonschema:"Title of the new slide"`
	Content   string   `json:"content" jsonschema:"Body content of the slide"`
	SlideType string   `json:"slide_type,omitempty" jsonschema:"Slide type: problem, solution, market, product, business_model, traction, team, ask, custom"`
	Position  *int     `json:"position,omitempty" jsonschema:"0-based position to insert at. Appends to end if omitted."`
	Bullets   []string `json:"bullets,omitempty" jsonschema:"Optional bullet points"`
}

// RemoveSlideInput defines the remove_slide input schema.
type RemoveSlideInput struct {
	SlideIndex int `json:"slide_index" jsonschema:"0-based index of the slide to remove"`
}

// ChangeThemeInput defines the change_theme input schema. The theme
// value is enum-constrained in the published schema.
type ChangeThemeInput struct {
	Theme string `json:"theme" jsonschema:"Theme name: midnight, clean, sunset, forest, electric"`
}

// registerTools registers the five deck tools on the MCP server.
func (s *Server) registerTools() error {
	generateSchema, err := jsonschema.For[GenerateInput](nil)
	if err != nil {
		return fmt.Errorf("schema for generate_pitch_deck: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:  "generate_pitch_deck",
		Title: "Generate Pitch Deck",
		Description: "Generate a complete pitch deck from a startup description. " +
			"Returns an interactive slide viewer widget with professionally designed slides. " +
			"Use this when the user wants to create a pitch deck, investor presentation, or startup slides.",
		InputSchema: generateSchema,
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: false, IdempotentHint: false},
	}, s.generatePitchDeck)

	updateSchema, err := jsonschema.For[UpdateSlideInput](nil)
	if err != nil {
		return fmt.Errorf("schema for update_slide: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_slide",
		Title:       "Update Slide",
		Description: "Update the content of a specific slide in the current pitch deck. Can modify title, content, or bullets.",
		InputSchema: updateSchema,
	}, s.updateSlide)

	addSchema, err := jsonschema.For[AddSlideInput](nil)
	if err != nil {
		return fmt.Errorf("schema for add_slide: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_slide",
		Title:       "Add Slide",
		Description: "Add a new slide to the current pitch deck at a given position.",
		InputSchema: addSchema,
	}, s.addSlide)

	removeSchema, err := jsonschema.For[RemoveSlideInput](nil)
	if err != nil {
		return fmt.Errorf("schema for remove_slide: %w", err)
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_slide",
		Title:       "Remove Slide",
		Description: "Remove a slide from the current pitch deck by its index.",
		InputSchema: removeSchema,
	}, s.removeSlide)

	themeSchema, err := jsonschema.For[ChangeThemeInput](nil)
	if err != nil {
		return fmt.Errorf("schema for change_theme: %w", err)
	}
	// The theme set is closed: publish it as an enum so clients reject
	// unknown values before the call reaches the store.
	if prop, ok := themeSchema.Properties["theme"]; ok {
		for _, name := range deck.Themes {
			prop.Enum = append(prop.Enum, name)
		}
	}
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:  "change_theme",
		Title: "Change Theme",
		Description: "Change the visual theme of the pitch deck. Options: midnight (dark navy), " +
			"clean (white minimal), sunset (warm gradient), forest (deep green), electric (neon cyberpunk).",
		InputSchema: themeSchema,
	}, s.changeTheme)

	return nil
}

func (s *Server) generatePitchDeck(_ context.Context, _ *mcp.CallToolRequest, in GenerateInput) (*mcp.CallToolResult, any, error) {
	d, summary := s.store.Generate(deck.GenerateInput{
		CompanyName: in.CompanyName,
		Description: in.Description,
		Industry:    in.Industry,
		Stage:       in.Stage,
		AskAmount:   in.AskAmount,
		Traction:    in.Traction,
	})
	return s.result(d, summary)
}

func (s *Server) updateSlide(_ context.Context, _ *mcp.CallToolRequest, in UpdateSlideInput) (*mcp.CallToolResult, any, error) {
	d, summary, err := s.store.UpdateSlide(deck.UpdateSlideInput{
		Index:   in.SlideIndex,
		Title:   in.Title,
		Content: in.Content,
		Bullets: in.Bullets,
	})
	if err != nil {
		return errResult(err)
	}
	return s.result(d, summary)
}

func (s *Server) addSlide(_ context.Context, _ *mcp.CallToolRequest, in AddSlideInput) (*mcp.CallToolResult, any, error) {
	d, summary, err := s.store.AddSlide(deck.AddSlideInput{
		Title:    in.Title,
		Content:  in.Content,
		Type:     in.SlideType,
		Position: in.Position,
		Bullets:  in.Bullets,
	})
	if err != nil {
		return errResult(err)
	}
	return s.result(d, summary)
}

func (s *Server) removeSlide(_ context.Context, _ *mcp.CallToolRequest, in RemoveSlideInput) (*mcp.CallToolResult, any, error) {
	d, summary, err := s.store.RemoveSlide(in.SlideIndex)
	if err != nil {
		return errResult(err)
	}
	return s.result(d, summary)
}

func (s *Server) changeTheme(_ context.Context, _ *mcp.CallToolRequest, in ChangeThemeInput) (*mcp.CallToolResult, any, error) {
	d, summary, err := s.store.ChangeTheme(in.Theme)
	if err != nil {
		return errResult(err)
	}
	return s.result(d, summary)
}

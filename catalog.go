package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

type Category string

const (
	CategoryImage       Category = "image"
	CategoryText        Category = "text"
	CategoryExport      Category = "export"
	CategoryDevelopment Category = "development"
	CategoryData        Category = "data"
)

var categoryOrder = []Category{CategoryImage, CategoryText, CategoryExport, CategoryDevelopment, CategoryData}

type TaskColor string

const (
	ColorBlue   TaskColor = "blue"
	ColorGreen  TaskColor = "green"
	ColorPurple TaskColor = "purple"
	ColorOrange TaskColor = "orange"
	ColorRed    TaskColor = "red"
)

// Hex returns the display color for a task card.
func (c TaskColor) Hex() string {
	switch c {
	case ColorBlue:
		return "#3B82F6"
	case ColorGreen:
		return "#22C55E"
	case ColorPurple:
		return "#A855F7"
	case ColorOrange:
		return "#F97316"
	case ColorRed:
		return "#EF4444"
	default:
		return "#64748B"
	}
}

// TaskDescriptor is a read-only catalog entry. Placing one on the canvas
// creates a CanvasTask.
type TaskDescriptor struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Icon              string    `json:"icon,omitempty"`
	Category          Category  `json:"category"`
	Color             TaskColor `json:"color"`
	RequiresFileInput bool      `json:"requiresFileInput,omitempty"`
}

// Catalog supplies task descriptors grouped by category.
type Catalog struct {
	tasks []TaskDescriptor
}

func NewCatalog(tasks []TaskDescriptor) *Catalog {
	return &Catalog{tasks: append([]TaskDescriptor(nil), tasks...)}
}

// DefaultCatalog returns the built-in task set.
func DefaultCatalog() *Catalog {
	return NewCatalog([]TaskDescriptor{
		{ID: "image-bg-remove", Title: "Background Removal", Description: "Remove background from images automatically.", Icon: "image", Category: CategoryImage, Color: ColorBlue},
		{ID: "image-enhancement", Title: "Image Enhancement", Description: "Improve image quality and lighting.", Icon: "image", Category: CategoryImage, Color: ColorBlue},
		{ID: "image-replace-bg", Title: "Replace Background", Description: "Replace image background with a new one.", Icon: "image", Category: CategoryImage, Color: ColorBlue},
		{ID: "image-resize", Title: "Image Resize", Description: "Resize images to exact dimensions.", Icon: "image", Category: CategoryImage, Color: ColorBlue},
		{ID: "image-crop", Title: "Image Crop", Description: "Crop images to a selected region.", Icon: "image", Category: CategoryImage, Color: ColorBlue},
		{ID: "text-ocr", Title: "OCR Extraction", Description: "Convert handwritten notes to text.", Icon: "file-text", Category: CategoryText, Color: ColorGreen, RequiresFileInput: true},
		{ID: "text-summarize", Title: "Text Summarization", Description: "Create concise summaries from long text.", Icon: "file-text", Category: CategoryText, Color: ColorGreen},
		{ID: "text-to-flowchart", Title: "Text to Flowchart", Description: "Convert text descriptions into flowchart diagrams.", Icon: "file-text", Category: CategoryText, Color: ColorGreen},
		{ID: "export-flowchart", Title: "Generate Flowchart", Description: "Convert text to a flowchart diagram.", Icon: "download", Category: CategoryExport, Color: ColorOrange},
		{ID: "export-pdf", Title: "Export to PDF", Description: "Create a PDF from your workflow or results.", Icon: "download", Category: CategoryExport, Color: ColorOrange},
		{ID: "export-image", Title: "Export to Image", Description: "Save your workflow as an image.", Icon: "download", Category: CategoryExport, Color: ColorOrange},
		{ID: "dev-unit-test", Title: "Unit Test Generator", Description: "Generate unit tests for code.", Icon: "code", Category: CategoryDevelopment, Color: ColorPurple},
		{ID: "dev-syntax-check", Title: "Syntax Checker", Description: "Check code for syntax errors.", Icon: "code", Category: CategoryDevelopment, Color: ColorPurple},
		{ID: "ai-resume-generator", Title: "Resume Generator", Description: "Generate a resume from structured data.", Icon: "clipboard-check", Category: CategoryData, Color: ColorRed},
	})
}

// All returns every descriptor in catalog order.
func (c *Catalog) All() []TaskDescriptor {
	return append([]TaskDescriptor(nil), c.tasks...)
}

func (c *Catalog) Lookup(id string) (TaskDescriptor, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return TaskDescriptor{}, false
}

// Grouped returns the descriptors bucketed by category. Categories with no
// entries are omitted; the order of Categories() is stable.
func (c *Catalog) Grouped() map[Category][]TaskDescriptor {
	groups := make(map[Category][]TaskDescriptor)
	for _, t := range c.tasks {
		groups[t.Category] = append(groups[t.Category], t)
	}
	return groups
}

// Categories lists the non-empty categories, known ones first in their fixed
// order and any others after them by name.
func (c *Catalog) Categories() []Category {
	groups := c.Grouped()
	var out []Category
	for _, cat := range categoryOrder {
		if len(groups[cat]) > 0 {
			out = append(out, cat)
		}
	}
	fixed := len(out)
	for cat := range groups {
		known := false
		for _, k := range categoryOrder {
			if k == cat {
				known = true
				break
			}
		}
		if !known {
			out = append(out, cat)
		}
	}
	tail := out[fixed:]
	sort.Slice(tail, func(i, j int) bool { return tail[i] < tail[j] })
	return out
}

// EncodeDragPayload serializes a descriptor for a pick-up event.
func EncodeDragPayload(task TaskDescriptor) (string, error) {
	data, err := sonic.ConfigStd.Marshal(task)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeDragPayload parses a drop payload. Anything that is not a JSON
// descriptor with an id is rejected.
func DecodeDragPayload(payload string) (TaskDescriptor, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return TaskDescriptor{}, fmt.Errorf("empty drag payload")
	}
	var task TaskDescriptor
	if err := sonic.ConfigStd.UnmarshalFromString(payload, &task); err != nil {
		return TaskDescriptor{}, fmt.Errorf("parse drag payload: %w", err)
	}
	if task.ID == "" {
		return TaskDescriptor{}, fmt.Errorf("drag payload has no task id")
	}
	return task, nil
}

package gemini

import "google.golang.org/genai"

// responseSchema mirrors the assistant.Response document. Gemini enforces it
// server-side via structured output, so a successful call always yields a
// parseable document with the complete project state.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"assistant_message": {Type: genai.TypeString},
		"project_title":     {Type: genai.TypeString},
		"nodes": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":          {Type: genai.TypeString},
					"label":       {Type: genai.TypeString},
					"type":        {Type: genai.TypeString, Enum: []string{"concept", "task", "question", "output"}},
					"description": {Type: genai.TypeString},
					"x":           {Type: genai.TypeNumber},
					"y":           {Type: genai.TypeNumber},
				},
				Required: []string{"id", "label", "type", "x", "y"},
			},
		},
		"edges": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":     {Type: genai.TypeString},
					"source": {Type: genai.TypeString},
					"target": {Type: genai.TypeString},
					"label":  {Type: genai.TypeString},
				},
				Required: []string{"id", "source", "target"},
			},
		},
		"files": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"filename": {Type: genai.TypeString},
					"title":    {Type: genai.TypeString},
					"content":  {Type: genai.TypeString},
					"type":     {Type: genai.TypeString, Enum: []string{"summary", "detail", "faq", "config"}},
				},
				Required: []string{"filename", "title", "content", "type"},
			},
		},
	},
	Required: []string{"assistant_message", "nodes", "edges", "files", "project_title"},
}

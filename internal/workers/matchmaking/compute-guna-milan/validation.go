// internal/workers/matchmaking/compute-guna-milan/validation.go
package computegunamilan

import "guna-milan-workers/internal/common/validation"

func personSchema(description string) validation.Property {
	return validation.Property{
		Type:        validation.Types("object"),
		Description: description,
		Properties: map[string]validation.Property{
			"chartId": {
				Type:        validation.Types("string"),
				Description: "Identifier of a stored birth chart",
				MinLength:   intPtr(1),
				MaxLength:   intPtr(128),
			},
			"birthDetails": {
				Type:        validation.Types("object", "null"),
				Description: "Birth details echoed back in the report",
			},
			"astroDetails": {
				Type:        validation.Types("object", "null"),
				Description: "Resolved astrological facts (varna, vashya, yoni, gana, nadi, nakshatra, sign)",
			},
			"planets": {
				Type:        validation.Types("array", "null"),
				Description: "Planet placements used for Papasamyam",
				Items:       &validation.Property{Type: validation.Types("object")},
			},
			"manglik": {
				Type:        validation.Types("boolean"),
				Description: "Whether the person has Mangal dosha",
			},
		},
	}
}

// GetInputSchema describes the job variables. Other process variables are allowed at the root.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"male", "female"},
		Properties: map[string]validation.Property{
			"requestId": {
				Type:        validation.Types("string"),
				Description: "Caller correlation identifier",
				MaxLength:   intPtr(128),
			},
			"language": {
				Type:        validation.Types("string"),
				Description: "Report language; unsupported values fall back to English",
				MaxLength:   intPtr(16),
			},
			"male":   personSchema("First person of the match"),
			"female": personSchema("Second person of the match"),
		},
		AdditionalProperties: true,
	}
}

func intPtr(i int) *int {
	return &i
}

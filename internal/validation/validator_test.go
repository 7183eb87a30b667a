// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

package validation

import (
	"strings"
	"testing"
)

type rsvpFixture struct {
	UserID string `validate:"required"`
	Status string `validate:"required,oneof=attending interested declined"`
}

type feedbackFixture struct {
	Rating  int    `validate:"required,gte=1,lte=5"`
	Comment string `validate:"omitempty,max=2000"`
}

type locationFixture struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

func TestValidateStructPasses(t *testing.T) {
	t.Parallel()

	if err := ValidateStruct(&rsvpFixture{UserID: "u1", Status: "attending"}); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}
	if err := ValidateStruct(&feedbackFixture{Rating: 5}); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}
	if err := ValidateStruct(&locationFixture{Latitude: -33.9, Longitude: 151.2}); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}
}

func TestValidateStructFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   interface{}
		wantTag string
	}{
		{"missing required", &rsvpFixture{Status: "attending"}, "required"},
		{"bad oneof", &rsvpFixture{UserID: "u1", Status: "maybe"}, "oneof"},
		{"rating too high", &feedbackFixture{Rating: 6}, "lte"},
		{"latitude out of range", &locationFixture{Latitude: 91}, "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			found := false
			for _, fe := range verr.Errors() {
				if fe.Tag() == tt.wantTag {
					found = true
				}
			}
			if !found {
				t.Errorf("tag %q not among errors: %v", tt.wantTag, verr)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&rsvpFixture{})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "required") {
		t.Errorf("message = %q, want a required-field explanation", apiErr.Message)
	}
	// Two failing fields: details carry the field list.
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Errorf("details missing fields list: %v", apiErr.Details)
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator returned different instances")
	}
}

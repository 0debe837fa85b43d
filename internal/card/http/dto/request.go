// Package dto provides data transfer objects for card HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/cardid/internal/validation"
)

// ClassifyCardRequest contains a single card number, optionally grouped with whitespace.
type ClassifyCardRequest struct {
	Number string `json:"number"`
}

// Validate checks if the classify request is valid.
func (r *ClassifyCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Number,
			validation.Required,
			validation.Length(1, customValidation.MaxCardNumberInputLength),
			customValidation.CardNumberChars,
		),
	)
}

// ClassifyBatchRequest contains several card numbers. Entries are not required to be well
// formed; malformed entries are reported individually in the response.
type ClassifyBatchRequest struct {
	Numbers []string `json:"numbers"`
}

// Validate checks the batch size against maxSize and bounds every entry length.
func (r *ClassifyBatchRequest) Validate(maxSize int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Numbers,
			validation.Required,
			validation.Length(1, maxSize),
			validation.Each(validation.Length(0, customValidation.MaxCardNumberInputLength)),
		),
	)
}

// CheckDigitRequest contains the digits to complete with a Luhn check digit.
type CheckDigitRequest struct {
	Payload string `json:"payload"`
}

// Validate checks if the check digit request is valid.
func (r *CheckDigitRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Payload,
			validation.Required,
			customValidation.Digits,
			validation.Length(1, customValidation.MaxCardNumberInputLength-1),
		),
	)
}

// Package domain holds the PromptJourney entities and value objects.
//
// Every value object has a smart constructor returning a result.Result, so an
// instance only exists when its raw input passed validation. Entities are
// built from those results and report every invalid field at once.
package domain

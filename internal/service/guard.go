package service

import "github.com/PawelJakubczyk/PromptJourney-sub000/internal/result"

// present turns an existence check into a guard that fails with missing
// when the record does not exist.
func present(check result.Result[bool], missing result.Error) result.Result[result.Unit] {
	return result.Bind(check, func(exists bool) result.Result[result.Unit] {
		if !exists {
			return result.Fail[result.Unit](missing)
		}
		return result.Ok(result.Unit{})
	})
}

// absent turns an existence check into a guard that fails with taken when
// the record already exists.
func absent(check result.Result[bool], taken result.Error) result.Result[result.Unit] {
	return result.Bind(check, func(exists bool) result.Result[result.Unit] {
		if exists {
			return result.Fail[result.Unit](taken)
		}
		return result.Ok(result.Unit{})
	})
}

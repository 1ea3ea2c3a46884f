package controllers

import "github.com/fahmi-a-r/typo-corrector/pkg/http/usecases"

type CorrectorService interface {
	Correct(queries []usecases.CorrectionQuery) []usecases.CorrectionResult
}

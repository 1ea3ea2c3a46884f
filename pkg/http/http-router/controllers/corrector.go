package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fahmi-a-r/typo-corrector/pkg/http/usecases"
	helper "github.com/fahmi-a-r/typo-corrector/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

type correctorAPI struct {
	correctorService CorrectorService
	log              *zap.Logger
}

func New(correctorService CorrectorService, log *zap.Logger) *correctorAPI {
	return &correctorAPI{
		correctorService: correctorService,
		log:              log,
	}

}

func (api *correctorAPI) Routes(group *helper.RouteGroup) {
	group.POST("/correct", api.correct)
	group.SetNotFound(http.HandlerFunc(api.NotFoundResponse))
}

// correctionRequest model info
//
//	@Description	one sub-query of a correction batch.
type correctionRequest struct {
	Candidate    string `json:"candidate" validate:"required"` // the possibly misspelled token.
	MaxTolerance uint32 `json:"max_tolerance"`                 // maximum edit distance of returned candidates.
}

// correct answers a batch of correction sub-queries. The response array
// is index-aligned with the request array.
func (api *correctorAPI) correct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var requests []correctionRequest
	err := json.NewDecoder(r.Body).Decode(&requests)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()
	for index, request := range requests {
		if err := validate.Struct(request); err != nil {
			english := en.New()
			uni := ut.New(english, english)
			trans, _ := uni.GetTranslator("en")
			_ = enTranslations.RegisterDefaultTranslations(validate, trans)
			vv := translateError(err, trans)
			vvString := []string{}
			for _, v := range vv {
				vvString = append(vvString, v.Error())
			}
			api.BadRequestResponse(w, r, fmt.Errorf("validation error in request %d: %v", index, vvString))
			return
		}
	}

	queries := make([]usecases.CorrectionQuery, 0, len(requests))
	for _, request := range requests {
		queries = append(queries, usecases.CorrectionQuery{
			Candidate:    request.Candidate,
			MaxTolerance: request.MaxTolerance,
		})
	}

	responses := api.correctorService.Correct(queries)

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, responses, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}

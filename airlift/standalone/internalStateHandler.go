// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"net/http"

	"github.com/go-chi/render"
)

const internalStateUnavailableErrorType = "InternalState.Unavailable"

// ErrorResponse is the JSON error shape of the standalone debug API.
type ErrorResponse struct {
	ErrorType    string `json:"errorType"`
	ErrorMessage string `json:"errorMessage"`
}

func InternalStateHandler(w http.ResponseWriter, r *http.Request, s SimServer) {
	state, err := s.InternalState()
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, &ErrorResponse{
			ErrorType:    internalStateUnavailableErrorType,
			ErrorMessage: err.Error(),
		})
		return
	}

	w.Write(state.AsJSON())
}

// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package standalone

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/airliftsim/airlift/airlift/telemetry"
)

func EventLogHandler(w http.ResponseWriter, r *http.Request, eventsAPI *telemetry.SimEventsAPI) {
	bytes, err := json.Marshal(eventsAPI.EventLog().Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("marshalling error: %s", err), http.StatusInternalServerError)
		return
	}
	w.Write(bytes)
}

// Copyright The Airlift Authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"strconv"
)

var errBootstrapParams = errors.New("expected three parameters: snapshot destination, access key, error destination")

type bootstrapParams struct {
	// snapshotDest is the state-snapshot log destination.
	snapshotDest string
	// accessKey identifies the coordination substrate instance; it must
	// parse as an unsigned integer (base prefixes accepted).
	accessKey uint64
	// errorDest receives internal error output.
	errorDest string
}

func getBootstrapParams(args []string) (bootstrapParams, error) {
	// args[0] is the binary name
	if len(args) != 4 {
		return bootstrapParams{}, errBootstrapParams
	}

	key, err := strconv.ParseUint(args[2], 0, 32)
	if err != nil {
		return bootstrapParams{}, err
	}

	return bootstrapParams{
		snapshotDest: args[1],
		accessKey:    key,
		errorDest:    args[3],
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errServicesAreMissing is returned by NewHandlers when the service layer is
// not fully built. This is a startup misconfiguration and stops the process.
var errServicesAreMissing = errors.New("services are missing")

// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package metrics

import "github.com/prometheus/client_golang/prometheus"

// namespace prefixes every metric name this package registers.
const namespace = "keyvault"

// Registry is the collector registry all promauto.With(Registry) metrics in
// this package attach to. A dedicated registry, rather than
// prometheus.DefaultRegisterer, keeps a library consumer's own metrics free
// of anything this package exposes.
var Registry = prometheus.NewRegistry()

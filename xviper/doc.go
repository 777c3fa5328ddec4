// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xviper bootstraps viper for executables: standard search paths, environment
variables, and command line flags.
*/
package xviper

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package status tracks backend connectivity for the indicator in the
// chat UI.
//
// A Monitor owns a single boolean: is the backend reachable and
// healthy. It re-evaluates on a fixed cadence and on demand via Poke,
// which event handlers call after a transport failure or when the
// terminal regains focus. Pokes are rate limited so a burst of failures
// collapses into one probe. Observers registered with OnChange fire
// only on transitions, never on steady state.
package status

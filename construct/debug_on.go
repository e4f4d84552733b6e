// SPDX-License-Identifier: MIT

//go:build polytope_debug

package construct

// debugChecks enables re-validation of every constructor result.
const debugChecks = true

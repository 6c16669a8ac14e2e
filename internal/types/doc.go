/*
Package types defines core data structures shared across pickli.

# Overview

The types package provides shared type definitions for:
  - Candidate items and selection modes
  - Dialog results (confirmed selection vs. cancellation)
  - Render feed entries consumed by the view layer
  - Invocation history entries

# Selection Types

Item:
  - One candidate entry supplied by the caller
  - Stable unique ID, display name, initial checked state
  - The candidate set never changes while a dialog is open

Result:
  - Terminal outcome of a dialog session
  - Confirmed carries the checked ids in original candidate order
  - Cancelled carries nothing; an empty confirmed selection is
    deliberately distinct from cancellation

# Design Notes

Checked state is keyed by item ID, never by list position, so a live
filter can hide and reveal items without losing or reassigning state.
*/
package types

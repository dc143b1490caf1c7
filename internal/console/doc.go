// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console holds the UI-agnostic state of the frontends console.
//
// [Page] is the single owned store: it keeps the last fetched list of
// frontends, the page-level error banner and the active [Overlay]. The
// overlay is one of a create/edit [Form] or an [Uploader] bound to a record,
// never more than one at a time. Each record is rendered through a [Card],
// which owns only the two-step delete confirmation.
//
// Every successful write (create, update, delete, upload) is followed by a
// full re-fetch of the list; the store is never patched locally. Renderers
// (the browser console and the terminal console) read [Page.Snapshot] and
// call the mutation methods; they never talk to the adapter themselves.
package console

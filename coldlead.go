// Package coldlead supports a cold-outreach lead pipeline. It derives a clean
// company name for each lead from its website domain or title and composes a
// personalized Slovak opening sentence, either from fixed phrase tables or
// through a generative-text service.
//
// This package contains domain types, interfaces and the pure text pipeline,
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., directus/,
// gemini/, sqlite/).
package coldlead

// Package preset composes the effect primitives into named voice-changing
// chains. A Chain is plain data: an ordered list of effect identifiers with
// parameter overrides. The Registry binds chains to an effect factory table
// and a collaborator provider, builds every step before the first sample is
// processed, and threads the buffer through the steps in order.
//
// The stock catalogue (BuiltinChains) covers the classic characters:
// haunted, cyborg, cylon, girl_voice, demon, robot_vocoder, and three dozen
// more. External chains load from YAML via LoadChains.
package preset

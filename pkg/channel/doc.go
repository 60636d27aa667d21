/*
Package channel implements the host-side plumbing that connects a plugin to the application it
runs in: a binary Messenger keyed by channel name, request/response MethodChannels, and
broadcast EventChannels.

Method calls and results travel as JSON envelopes. The envelope codec is deliberately
schema-less so that plugins can carry opaque arguments without agreeing on Go types with the
host.
*/
package channel

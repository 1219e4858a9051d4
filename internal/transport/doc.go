// Package transport defines the narrow boundary between stalkbot's command
// core and the chat platform, plus a reference gateway client speaking a
// small JSON-over-WebSocket protocol.
//
// The core only ever sees Message, Reply, User and Channel; everything
// platform-specific stays behind the Gateway interface.
package transport

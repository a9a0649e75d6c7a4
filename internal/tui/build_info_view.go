// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/mission-planner/models"
)

func renderBuildInfoWindow(client models.AppBuildInfo, server *serverInfoMsg) string {
	var b strings.Builder

	b.WriteString("Console version: ")
	b.WriteString(valueOrNA(client.Version))
	b.WriteString("\nConsole commit:  ")
	b.WriteString(valueOrNA(client.Commit))
	b.WriteString("\nConsole date:    ")
	b.WriteString(valueOrNA(client.Date))
	b.WriteString("\n\n")

	switch {
	case server == nil:
		b.WriteString("Server: loading...")
	case server.err != nil:
		b.WriteString("Server: ")
		b.WriteString(humanizeError(server.err))
	default:
		b.WriteString("Server status:   ")
		b.WriteString(valueOrNA(server.health.Status))
		b.WriteString("\nServer version:  ")
		b.WriteString(valueOrNA(server.info.Version))
		b.WriteString("\nServer commit:   ")
		b.WriteString(valueOrNA(server.info.Commit))
		b.WriteString("\nServer date:     ")
		b.WriteString(valueOrNA(server.info.Date))
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

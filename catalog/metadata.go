package catalog

import (
	"strings"

	"github.com/atres-cli/atres/page"
	"github.com/atres-cli/atres/source"
)

// DateLabel prefixes the broadcast date in episode descriptions.
const DateLabel = "Fecha: "

// ProgramMetadata returns the display data of a program.
func ProgramMetadata(program *source.Program) page.Metadata {
	return page.Metadata{Title: program.Title, Icon: program.Icon}
}

// SeasonMetadata returns the display data of a season separator.
func SeasonMetadata(season *source.Season) page.Metadata {
	return page.Metadata{Title: season.Title}
}

// EpisodeMetadata returns the display data of an episode.
// The title carries the subtitle, and the description starts with the date when known.
func EpisodeMetadata(episode *source.Episode) page.Metadata {
	var description strings.Builder
	if date, ok := episode.Date.Get(); ok && date != "" {
		description.WriteString(DateLabel)
		description.WriteString(date)
		description.WriteString("\n")
	}
	description.WriteString(episode.Description)

	return page.Metadata{
		Title:       episode.String(),
		Description: description.String(),
		Icon:        episode.Icon,
	}
}

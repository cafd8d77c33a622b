package ytdlp

import (
	"strconv"
	"strings"

	"github.com/bnema/vidsum/internal/domain"
)

// parseProgressLine decodes one line rendered from progressTemplate. Fields
// yt-dlp does not know are printed as "NA" and decode to zero.
func parseProgressLine(line string) (domain.DownloadProgress, bool) {
	rest, ok := strings.CutPrefix(line, progressTag+" ")
	if !ok {
		return domain.DownloadProgress{}, false
	}
	fields := strings.SplitN(strings.TrimSpace(rest), " ", 7)
	if len(fields) < 6 {
		return domain.DownloadProgress{}, false
	}

	ev := domain.DownloadProgress{
		Status:          strings.ToLower(fields[0]),
		DownloadedBytes: parseInt64(fields[1]),
		TotalBytes:      parseInt64(fields[2]),
		FragmentIndex:   int(parseInt64(fields[4])),
		FragmentCount:   int(parseInt64(fields[5])),
	}
	if ev.TotalBytes <= 0 {
		ev.TotalBytes = parseInt64(fields[3])
	}
	if len(fields) == 7 && fields[6] != "NA" {
		ev.TmpFilename = fields[6]
	}
	switch ev.Status {
	case domain.DownloadEventDownloading, domain.DownloadEventFinished, domain.DownloadEventError:
	default:
		return domain.DownloadProgress{}, false
	}
	return ev, true
}

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" || s == "None" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return max(n, 0)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int64(f)
}

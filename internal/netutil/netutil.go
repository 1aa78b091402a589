// Package netutil holds presentation helpers and thin wrappers around the
// OS network diagnostic tools. Nothing here touches the database.
package netutil

import (
	"context"
	"math"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

var sizeNames = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders a byte count with base-1024 units, e.g. "1.5 KB".
// Zero formats as exactly "0 B" and negative counts carry a leading
// minus. The fractional part is rounded to precision decimals and
// trailing zeros are trimmed, but at least one decimal digit is always
// kept.
func FormatBytes(n int64, precision int) string {
	if n == 0 {
		return "0 B"
	}
	if n < 0 {
		if n == math.MinInt64 {
			n++
		}
		return "-" + FormatBytes(-n, precision)
	}

	i := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if i >= len(sizeNames) {
		i = len(sizeNames) - 1
	}
	p := math.Pow(1024, float64(i))

	shift := math.Pow(10, float64(precision))
	s := math.Round(float64(n)/p*shift) / shift

	str := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(str, ".") {
		str += ".0"
	}

	return str + " " + sizeNames[i]
}

// PingResult summarizes one ping invocation. Times are in milliseconds and
// nil when the host never answered.
type PingResult struct {
	Host            string   `json:"host"`
	Success         bool     `json:"success"`
	PacketsSent     int      `json:"packets_sent"`
	PacketsReceived int      `json:"packets_received"`
	MinTime         *float64 `json:"min_time"`
	MaxTime         *float64 `json:"max_time"`
	AvgTime         *float64 `json:"avg_time"`
}

// Hop is one traceroute hop.
type Hop struct {
	Hop   int       `json:"hop"`
	Host  string    `json:"host"`
	IP    string    `json:"ip,omitempty"`
	Times []float64 `json:"times"`
}

const pingCount = 4

// Ping shells out to the system ping binary.
func Ping(ctx context.Context, host string) PingResult {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "ping", "-n", strconv.Itoa(pingCount), host)
	} else {
		cmd = exec.CommandContext(ctx, "ping", "-c", strconv.Itoa(pingCount), host)
	}

	out, err := cmd.Output()
	if err != nil && len(out) == 0 {
		return PingResult{Host: host, PacketsSent: pingCount}
	}

	res := ParsePingOutput(string(out))
	res.Host = host
	return res
}

var (
	pingStatsRe    = regexp.MustCompile(`min/avg/max/[a-z]+ = ([\d.]+)/([\d.]+)/([\d.]+)/([\d.]+) ms`)
	pingReceivedRe = regexp.MustCompile(`(\d+)( packets)? received`)
)

// ParsePingOutput extracts packet counts and round-trip stats from the
// output of a Unix ping run.
func ParsePingOutput(output string) PingResult {
	res := PingResult{PacketsSent: pingCount}

	if m := pingReceivedRe.FindStringSubmatch(output); m != nil {
		res.PacketsReceived, _ = strconv.Atoi(m[1])
	}
	res.Success = res.PacketsReceived > 0

	if m := pingStatsRe.FindStringSubmatch(output); m != nil {
		min, _ := strconv.ParseFloat(m[1], 64)
		avg, _ := strconv.ParseFloat(m[2], 64)
		max, _ := strconv.ParseFloat(m[3], 64)
		res.MinTime = &min
		res.AvgTime = &avg
		res.MaxTime = &max
	}

	return res
}

// Traceroute shells out to the system traceroute binary and parses hops.
// An unreachable host yields an empty list, not an error.
func Traceroute(ctx context.Context, host string) []Hop {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "tracert", host)
	} else {
		cmd = exec.CommandContext(ctx, "traceroute", host)
	}

	out, err := cmd.Output()
	if err != nil && len(out) == 0 {
		return nil
	}

	return ParseTracerouteOutput(string(out))
}

var tracerouteHopRe = regexp.MustCompile(`^\s*(\d+)\s+([\w.-]+|\*)\s+\(([\d.]+)\)\s+([\d.]+) ms\s+([\d.]+) ms\s+([\d.]+) ms`)

func ParseTracerouteOutput(output string) []Hop {
	var hops []Hop
	lines := strings.Split(output, "\n")

	// first line is the header
	for _, line := range lines[1:] {
		m := tracerouteHopRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		num, _ := strconv.Atoi(m[1])
		t1, _ := strconv.ParseFloat(m[4], 64)
		t2, _ := strconv.ParseFloat(m[5], 64)
		t3, _ := strconv.ParseFloat(m[6], 64)

		hops = append(hops, Hop{
			Hop:   num,
			Host:  m[2],
			IP:    m[3],
			Times: []float64{t1, t2, t3},
		})
	}

	return hops
}

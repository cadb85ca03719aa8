package rekordbox

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"rbnotes/internal/model"
	"rbnotes/internal/xmltree"
)

// Tag and attribute names of a cue record.
const (
	tagPositionMark = "POSITION_MARK"
	attrNum         = "Num"
	attrStart       = "Start"
	attrEnd         = "End"
	attrType        = "Type"
	attrName        = "Name"
	attrRed         = "Red"
	attrGreen       = "Green"
	attrBlue        = "Blue"
)

// ParseMark parses the attributes of one POSITION_MARK into a Hotcue.
// Slot, start and (for loops) end are required; name and color are optional.
// An unusable color is dropped rather than failing the whole record.
func ParseMark(attrs map[string]string) (model.Hotcue, error) {
	var cue model.Hotcue

	numText, ok := attrs[attrNum]
	if !ok {
		return cue, &model.CueError{Reason: "missing Num"}
	}
	num, err := strconv.Atoi(numText)
	if err != nil {
		return cue, &model.CueError{Reason: fmt.Sprintf("Num %q is not an integer", numText)}
	}
	if num < model.MemoryCueSlot {
		return cue, &model.CueError{Reason: fmt.Sprintf("Num %d is out of range", num)}
	}
	cue.Slot = num

	startText, ok := attrs[attrStart]
	if !ok {
		return cue, &model.CueError{Reason: "missing Start"}
	}
	start, err := parseSeconds(startText)
	if err != nil {
		return cue, &model.CueError{Reason: fmt.Sprintf("Start %q: %v", startText, err)}
	}
	cue.Start = start
	cue.StartText = startText

	kind := model.CueKindCue
	if typeText, ok := attrs[attrType]; ok && typeText != "" {
		k, err := strconv.Atoi(typeText)
		if err != nil || k < int(model.CueKindCue) || k > int(model.CueKindLoop) {
			return cue, &model.CueError{Reason: fmt.Sprintf("unknown Type %q", typeText)}
		}
		kind = model.CueKind(k)
	}
	cue.Kind = kind

	if kind == model.CueKindLoop {
		endText, ok := attrs[attrEnd]
		if !ok {
			return cue, &model.CueError{Reason: "loop without End"}
		}
		end, err := parseSeconds(endText)
		if err != nil {
			return cue, &model.CueError{Reason: fmt.Sprintf("End %q: %v", endText, err)}
		}
		if end < start {
			return cue, &model.CueError{Reason: fmt.Sprintf("loop End %s before Start %s", endText, startText)}
		}
		cue.End = end
		cue.EndText = endText
	}

	cue.Name = attrs[attrName]
	cue.Color = parseColor(attrs)
	return cue, nil
}

func parseSeconds(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a valid time")
	}
	return v, nil
}

// parseColor returns "#RRGGBB" when all three channels are present and valid.
func parseColor(attrs map[string]string) string {
	var rgb [3]int
	for i, key := range []string{attrRed, attrGreen, attrBlue} {
		text, ok := attrs[key]
		if !ok {
			return ""
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < 0 || v > 255 {
			return ""
		}
		rgb[i] = v
	}
	return fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2])
}

// ExtractCues parses every POSITION_MARK child of a TRACK element. Records
// that fail to parse are logged and dropped. Hotcues come back sorted by
// slot and memory cues by start; both sorts are stable, so duplicates keep
// their export order.
func ExtractCues(track *xmltree.Node, log *zap.Logger) (hotcues, memory []model.Hotcue) {
	for _, mark := range track.ChildrenNamed(tagPositionMark) {
		cue, err := ParseMark(mark.Attrs)
		if err != nil {
			if cueErr, ok := err.(*model.CueError); ok {
				cueErr.Line = mark.Line
			}
			log.Warn("Dropping cue record",
				zap.String("track_id", track.Attr(attrTrackID)),
				zap.Error(err))
			continue
		}
		if cue.IsMemory() {
			memory = append(memory, cue)
		} else {
			hotcues = append(hotcues, cue)
		}
	}

	sort.SliceStable(hotcues, func(i, j int) bool {
		return hotcues[i].Slot < hotcues[j].Slot
	})
	sort.SliceStable(memory, func(i, j int) bool {
		return memory[i].Start < memory[j].Start
	})
	return hotcues, memory
}

package imposition

import "math"

// chunkByteThreshold is the practical byte-size limit of the PDF library in
// one document, per spec.md §4.3 ("Chunking").
const chunkByteThreshold = int64(1_900_000_000)

// ChunkPlan describes one output document: sheets [StartSheet, EndSheet).
type ChunkPlan struct {
	Index      int
	TotalCount int
	StartSheet int
	EndSheet   int
}

// Label renders the "part i of N" suffix used in output file naming, per
// spec.md §4.3 ("Chunking"). A single-chunk job has no suffix.
func (c ChunkPlan) Label() string {
	if c.TotalCount <= 1 {
		return ""
	}
	return " (part " + itoa(c.Index+1) + " of " + itoa(c.TotalCount) + ")"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// PlanChunks decides whether the job's output must be split across
// multiple documents and, if so, where the sheet boundaries fall.
//
// inputByteSize is the size of the source PDF; replicationFactor is the
// number of times each input page is drawn onto output sheets (slots per
// sheet, S). totalSheets and duplex describe the already-computed
// pagination. mode selects the page-count ceiling (50 for repeat, 100
// otherwise, per spec.md §4.3).
func PlanChunks(totalSheets int, duplex bool, mode Type, inputByteSize int64, replicationFactor int) []ChunkPlan {
	if totalSheets < 1 {
		totalSheets = 1
	}
	if replicationFactor < 1 {
		replicationFactor = 1
	}

	if inputByteSize*int64(replicationFactor) <= chunkByteThreshold {
		return []ChunkPlan{{Index: 0, TotalCount: 1, StartSheet: 0, EndSheet: totalSheets}}
	}

	pageCeiling := 100
	if mode == Repeat {
		pageCeiling = 50
	}
	outputPagesPerSheet := 1
	if duplex {
		outputPagesPerSheet = 2
	}
	sheetsPerChunk := pageCeiling / outputPagesPerSheet
	if sheetsPerChunk < 1 {
		sheetsPerChunk = 1
	}

	totalChunks := int(math.Ceil(float64(totalSheets) / float64(sheetsPerChunk)))
	if totalChunks < 1 {
		totalChunks = 1
	}

	chunks := make([]ChunkPlan, totalChunks)
	for i := 0; i < totalChunks; i++ {
		start := i * sheetsPerChunk
		end := start + sheetsPerChunk
		if end > totalSheets {
			end = totalSheets
		}
		chunks[i] = ChunkPlan{Index: i, TotalCount: totalChunks, StartSheet: start, EndSheet: end}
	}
	return chunks
}

package testutil

import (
	"math/rand"
	"strings"
)

// EnglishSample is ordinary English prose with no repeated passages, long
// enough (well over 2000 letters) for frequency analysis to be reliable.
const EnglishSample = `The lighthouse keeper had lived on the island for nearly thirty years, and in
that time he had learned to read the weather the way other people read the
morning paper. He could tell from the color of the water whether a storm was
coming, and from the behavior of the gulls how long it would last. Most of the
supply boats that visited him were crewed by young sailors who thought his
predictions were superstition, but after a season or two they stopped laughing
and started asking him when it would be safe to leave the harbor.

His daily routine rarely changed. He woke before dawn, climbed the spiral
staircase to check the lamp, and wrote a short entry in the logbook describing
the wind, the clouds, and any ships he had seen during the night. After
breakfast he walked along the rocky shore collecting driftwood for the stove,
and in the afternoon he repaired whatever the salt air had damaged since the
previous week. Hinges rusted, paint peeled, and the little vegetable garden
behind the cottage needed constant protection from the rabbits.

Visitors often asked whether he was lonely. He usually answered that the sea
was better company than most people, although he admitted that the winters
could be long. When the fog rolled in and stayed for days, he would sit by the
window with a cup of strong tea and work through the stack of books the supply
boat brought every month. He favored history and natural science, and he kept
careful notes in the margins about the birds and fish he observed near the
island, comparing them with the descriptions printed in his guides.

One autumn a young woman arrived to study the seabird colonies on the northern
cliffs. She carried a heavy bag of instruments, a folding tent, and a notebook
full of questions. At first the keeper found her curiosity exhausting, because
she wanted to know everything at once, from the depth of the channel to the
name of every plant that grew between the stones. Gradually, however, he began
to enjoy explaining the things he had quietly noticed for decades, and she in
turn showed him how to measure the nests and count the chicks without
disturbing the parents.

By the end of her visit they had filled several notebooks together. She
promised to send him a copy of the report she would write for the university,
and he promised to keep counting the birds each spring so that she could
compare the numbers over many years. When the supply boat finally carried her
back to the mainland, the island seemed unusually quiet, and for the first time
in a long while the keeper realized that he was looking forward to the next
letter more than to the next storm.

Years later the report became a standard reference for anyone studying the
coastal birds of the region. Its appendix included a long table of nesting
counts gathered by a volunteer observer whose name appeared only in a brief
note of thanks. Few readers paid attention to that line, but the keeper framed
the page and hung it beside the barometer, where he could see it every morning
on his way up to the lamp.`

// Letters returns only the ASCII letters of s.
func Letters(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// DeterministicText generates n random bytes drawn from charset with a fixed
// seed for reproducibility.
func DeterministicText(seed int64, charset string, n int) string {
	rng := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rng.Intn(len(charset))]
	}
	return string(b)
}

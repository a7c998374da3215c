package streebog

// rounds is the number of rounds of the block cipher E inside g.
const rounds = 12

// compress is the compression function g_N. It encrypts m under a key
// derived from h and the counter n, then feeds h and m forward into the result.
func compress(h *block, n *uint512, m *block) {
	var k, e, t block

	n.putBlock(&t)
	lpsx(&k, h, &t)

	e = *m
	for i := 0; i < rounds; i++ {
		lpsx(&e, &k, &e)
		lpsx(&k, &k, &roundConstants[i])
	}

	xorBlock(&e, &e, &k)
	xorBlock(h, h, &e)
	xorBlock(h, h, m)
}

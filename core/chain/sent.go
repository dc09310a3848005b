// File: core/chain/sent.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

// UpdateSent advances per-buffer cursors across the chain to account
// for sent bytes actually transmitted, and returns the new unsent
// head (nil when every buffer was fully consumed).
//
// Special buffers are skipped without consuming sent. A buffer covered
// entirely by sent has its memory cursor advanced to Last and its file
// cursor to FileLast; a partially covered buffer is advanced by the
// remaining count and becomes the new head.
func UpdateSent(in *Link, sent int64) *Link {
	for ; in != nil; in = in.Next {
		if in.Buf.Special() {
			continue
		}

		if sent == 0 {
			break
		}

		size := in.Buf.ChainSize()

		if sent >= size {
			sent -= size

			if in.Buf.InMemory() {
				in.Buf.Pos = in.Buf.Last
			}

			if in.Buf.InFile {
				in.Buf.FilePos = in.Buf.FileLast
			}

			continue
		}

		if in.Buf.InMemory() {
			in.Buf.Pos += int(sent)
		}

		if in.Buf.InFile {
			in.Buf.FilePos += sent
		}

		break
	}

	return in
}

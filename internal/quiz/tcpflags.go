package quiz

// TCPFlagsQuestions returns the built-in TCP flags and tcpdump filter
// question bank. The bank is rebuilt on every call so callers can shuffle
// freely.
func TCPFlagsQuestions() []Question {
	return []Question{
		tf(1, "Which flag does this match? tcpdump 'tcp[13] = 0x01'",
			[]string{"SYN", "FIN", "RST", "ACK"}, 1,
			"FIN flag (0x01) is used to close connections"),
		tf(2, "True or False: tcpdump 'tcp[13] = 0x20' matches SYN packets.",
			[]string{"True", "False"}, 1,
			"0x20 is the URG flag, not SYN (0x02)"),
		tf(3, "tcp[13] = 0x02 matches what connection phase?",
			[]string{"Connection termination", "TCP SYN (start)", "Data transfer", "Connection reset"}, 1,
			"SYN flag (0x02) initiates TCP connections"),
		tf(4, "Fill in the missing mask: tcpdump 'tcp[tcpflags] & _____ = tcp-syn'",
			[]string{"0x01", "0x02", "0x04", "0x10"}, 1,
			"0x02 is the mask for the SYN flag"),
		tf(5, "tcpdump 'tcp[13] & 0x14 = 0x14' matches what flags?",
			[]string{"SYN + ACK", "FIN + ACK", "RST + ACK", "PSH + ACK"}, 2,
			"0x14 combines RST (0x04) and ACK (0x10) flags"),
		tf(6, "tcp[13] = 0x04 matches which TCP flag?",
			[]string{"PSH", "ACK", "RST", "SYN"}, 2,
			"RST flag (0x04) abruptly terminates connections"),
		tf(7, "tcpdump 'tcp[13] & 0x01 != 0' filters what?",
			[]string{"SYN packets", "RST packets", "FIN packets", "No-flag packets"}, 2,
			"FIN flag (0x01) is used to close connections"),
		tf(8, "tcpdump 'tcp[13] & 0x12 = 0x02' filters what?",
			[]string{"SYN-only packets", "ACK-only packets", "SYN+ACK packets", "RST packets"}, 0,
			"This checks for SYN (0x02) without ACK (0x10)"),
		tf(9, "tcp[13] = 0x10 matches what?",
			[]string{"SYN packets", "ACK-only (data transfer)", "FIN packets", "RST packets"}, 1,
			"ACK flag (0x10) acknowledges received data"),
		tf(10, "Which hex value matches SYN+ACK?",
			[]string{"0x02", "0x12", "0x10", "0x04"}, 1,
			"0x12 combines SYN (0x02) and ACK (0x10) flags"),
		tf(11, "True or False: tcp[tcpflags] & tcp-syn != 0 matches any packet with SYN.",
			[]string{"True", "False"}, 0,
			"This filter checks if the SYN bit is set, regardless of other flags"),
		tf(12, "tcpdump 'tcp[13] & 0x08 != 0' matches what?",
			[]string{"Any SYN packet", "Any RST packet", "Any PSH packet", "Any ACK packet"}, 2,
			"PSH flag (0x08) tells the receiver to push data to the application"),
		tf(13, "True or False: tcpdump 'tcp[13] = 0x19' matches PSH+FIN+ACK.",
			[]string{"True", "False"}, 0,
			"0x19 combines PSH (0x08), FIN (0x01), and ACK (0x10) flags"),
		tf(14, "Which flag combination is represented by tcp[13] = 0x11?",
			[]string{"SYN+ACK", "FIN+ACK", "RST+ACK", "PSH+ACK"}, 1,
			"0x11 combines FIN (0x01) and ACK (0x10) flags"),
		tf(15, "What value completes this? tcpdump 'tcp[13] = _____' (only ACK)",
			[]string{"0x01", "0x02", "0x04", "0x10"}, 3,
			"ACK flag (0x10) acknowledges received data"),
		tf(16, "tcpdump 'tcp[13] = 0x18' filters which of the following?",
			[]string{"SYN only", "PSH+ACK", "FIN+SYN", "RST only"}, 1,
			"0x18 combines PSH (0x08) and ACK (0x10) flags"),
		tf(17, "True or False: tcp[13] = 0x00 matches packets with no flags set.",
			[]string{"True", "False"}, 0,
			"0x00 means no flags are set in the TCP header"),
		tf(18, "Which filter matches packets with either SYN or FIN flags?",
			[]string{"tcp[13] & 0x03 != 0", "tcp[13] & 0x12 != 0", "tcp[13] & 0x06 != 0", "tcp[13] & 0x11 != 0"}, 0,
			"0x03 combines SYN (0x02) and FIN (0x01) masks"),
		tf(19, "Which filter excludes all ACK packets?",
			[]string{"tcp[13] & 0x10 = 0", "tcp[13] & 0x10 != 0", "tcp[13] = 0x10", "tcp[13] != 0x10"}, 0,
			"This checks that the ACK bit (0x10) is not set"),
		tf(20, "Which flag does tcpdump 'tcp[tcpflags] & tcp-urg != 0' match?",
			[]string{"Only URG", "URG and any other flag", "Only RST", "RST and any other flag"}, 1,
			"tcp-urg matches the URG flag (0x20)"),
		tf(21, "What does tcpdump 'tcp[13] = 0x12' filter?",
			[]string{"FIN+ACK", "SYN+ACK", "RST+ACK", "PSH+ACK"}, 1,
			"0x12 combines SYN (0x02) and ACK (0x10) flags"),
		tf(22, "True or False: tcpdump 'tcp[13] & 0x03 = 0x03' matches packets with both SYN and FIN set.",
			[]string{"True", "False"}, 0,
			"This checks that both SYN (0x02) and FIN (0x01) bits are set"),
		tf(23, "Which flag has the hex value 0x20?",
			[]string{"SYN", "ACK", "URG", "PSH"}, 2,
			"URG flag has the hex value 0x20"),
		tf(24, "What does tcpdump 'tcp[13] & 0x3F = 0' filter?",
			[]string{"All TCP packets", "Packets with no common flags", "Only ECE and CWR flags", "Invalid packets"}, 1,
			"0x3F masks the six common flags (FIN, SYN, RST, PSH, ACK, URG)"),
		tf(25, "Which filter matches the third step of a TCP handshake?",
			[]string{"tcp[13] = 0x02", "tcp[13] = 0x12", "tcp[13] = 0x10", "tcp[13] = 0x04"}, 2,
			"The third step is an ACK-only packet (0x10)"),
		tf(26, "What does tcpdump 'tcp[13] & 0x04 = 0x04' match?",
			[]string{"SYN-only packets", "RST-only packets", "ACK-only packets", "FIN-only packets"}, 1,
			"This checks for RST (0x04) without other flags"),
		tf(27, "Which filter matches packets with the PSH flag but not the ACK flag?",
			[]string{"tcp[13] = 0x08", "tcp[13] = 0x18", "tcp[13] & 0x18 = 0x08", "tcp[13] & 0x08 = 0x08"}, 0,
			"0x08 is the PSH flag without any other flags"),
		tf(28, "What does tcpdump 'tcp[13] & 0x02 != 0 and tcp[13] & 0x10 = 0' filter?",
			[]string{"SYN+ACK packets", "SYN-only packets", "ACK-only packets", "RST packets"}, 1,
			"This checks for SYN (0x02) without ACK (0x10)"),
		tf(29, "Which flag combination is represented by tcp[13] = 0x19?",
			[]string{"SYN+ACK+FIN", "PSH+ACK+FIN", "RST+ACK+FIN", "URG+ACK+FIN"}, 1,
			"0x19 combines PSH (0x08), ACK (0x10), and FIN (0x01) flags"),
		tf(30, "True or False: tcpdump 'tcp[tcpflags] = tcp-syn|tcp-ack' is equivalent to 'tcp[13] = 0x12'.",
			[]string{"True", "False"}, 0,
			"Both filter for SYN+ACK packets (0x12)"),
		tf(31, "What does tcpdump 'tcp[13] & 0x10 = 0x10' match?",
			[]string{"Only ACK packets", "Any packet with ACK set", "Only SYN packets", "Any packet with SYN set"}, 1,
			"This checks if the ACK bit is set, regardless of other flags"),
		tf(32, "Which filter matches packets with either RST or FIN flags?",
			[]string{"tcp[13] & 0x05 != 0", "tcp[13] & 0x06 != 0", "tcp[13] & 0x03 != 0", "tcp[13] & 0x14 != 0"}, 0,
			"0x05 combines RST (0x04) and FIN (0x01) masks"),
		tf(33, "What does tcpdump 'tcp[13] = 0x00' filter?",
			[]string{"All TCP packets", "No TCP packets", "Packets with no flags set", "Invalid packets"}, 2,
			"0x00 means no flags are set in the TCP header"),
		tf(34, "Which flag combination is represented by tcp[13] = 0x1A?",
			[]string{"SYN+ACK+RST", "PSH+ACK+RST", "FIN+ACK+RST", "URG+ACK+RST"}, 1,
			"0x1A combines PSH (0x08), ACK (0x10), and RST (0x02) flags"),
		tf(35, "What does tcpdump 'tcp[13] & 0x30 = 0x30' match?",
			[]string{"ACK+SYN", "ACK+RST", "ACK+URG", "ACK+PSH"}, 2,
			"0x30 combines ACK (0x10) and URG (0x20) flags"),
		tf(36, "Which filter matches the second step of a TCP handshake?",
			[]string{"tcp[13] = 0x02", "tcp[13] = 0x12", "tcp[13] = 0x10", "tcp[13] = 0x04"}, 1,
			"The second step is a SYN+ACK packet (0x12)"),
		tf(37, "True or False: tcpdump 'tcp[13] & 0x02 = 0x02' matches only SYN packets without other flags.",
			[]string{"True", "False"}, 1,
			"This matches any packet with SYN set, regardless of other flags"),
		tf(38, "What does tcpdump 'tcp[13] & 0x29 = 0x29' match?",
			[]string{"FIN+PSH+URG", "FIN+ACK+URG", "SYN+ACK+URG", "RST+ACK+URG"}, 1,
			"0x29 combines FIN (0x01), ACK (0x10), and URG (0x20) flags"),
		tf(39, "Which filter matches packets with the ACK flag but not the SYN flag?",
			[]string{"tcp[13] & 0x12 = 0x10", "tcp[13] & 0x12 = 0x02", "tcp[13] = 0x10", "tcp[13] = 0x12"}, 0,
			"This checks for ACK (0x10) without SYN (0x02)"),
		tf(40, "What does tcpdump 'tcp[13] & 0x17 = 0' filter?",
			[]string{"All TCP packets", "Packets with no FIN, SYN, RST, or ACK", "Only PSH packets", "Invalid packets"}, 1,
			"0x17 masks FIN (0x01), SYN (0x02), RST (0x04), and ACK (0x10) flags"),
		tf(41, "Which flag has the hex value 0x08?",
			[]string{"SYN", "ACK", "RST", "PSH"}, 3,
			"PSH flag has the hex value 0x08"),
		tf(42, "What does tcpdump 'tcp[13] & 0x3F != 0' filter?",
			[]string{"All TCP packets", "Packets with at least one flag set", "Only ECE and CWR flags", "Invalid packets"}, 1,
			"0x3F masks the six common flags (FIN, SYN, RST, PSH, ACK, URG)"),
		tf(43, "True or False: tcpdump 'tcp[13] = 0x18' matches packets with both PSH and ACK flags set.",
			[]string{"True", "False"}, 0,
			"0x18 combines PSH (0x08) and ACK (0x10) flags"),
		tf(44, "Which filter matches only TCP packets where the FIN flag is set and no other flags are set?",
			[]string{"tcp[13] = 0x01", "tcp[13] = 0x11", "tcp[13] & 0x11 = 0x01", "tcp[13] & 0x01 = 0x01"}, 0,
			"0x01 is the FIN flag without any other flags"),
		tf(45, "What does tcpdump 'tcp[13] & 0x07 = 0x07' match?",
			[]string{"FIN+SYN+RST", "FIN+SYN+PSH", "FIN+RST+PSH", "SYN+RST+PSH"}, 0,
			"0x07 combines FIN (0x01), SYN (0x02), and RST (0x04) flags"),
		tf(46, "Which filter matches packets with either PSH or URG flags?",
			[]string{"tcp[13] & 0x28 != 0", "tcp[13] & 0x18 != 0", "tcp[13] & 0x30 != 0", "tcp[13] & 0x0C != 0"}, 0,
			"0x28 combines PSH (0x08) and URG (0x20) masks"),
		tf(47, "What does tcpdump 'tcp[13] = 0x04' filter?",
			[]string{"SYN-only packets", "RST-only packets", "ACK-only packets", "FIN-only packets"}, 1,
			"0x04 is the RST flag without any other flags"),
		tf(48, "True or False: tcpdump 'tcp[tcpflags] & tcp-fin != 0 and tcp[tcpflags] & tcp-ack != 0' matches FIN+ACK packets.",
			[]string{"True", "False"}, 0,
			"This checks for both FIN and ACK flags being set"),
		tf(49, "Which flag combination is represented by tcp[13] = 0x14?",
			[]string{"SYN+ACK", "FIN+ACK", "RST+ACK", "PSH+ACK"}, 2,
			"0x14 combines RST (0x04) and ACK (0x10) flags"),
		tf(50, "What does tcpdump 'tcp[13] & 0x02 = 0x02 and tcp[13] & 0x10 = 0x10' filter?",
			[]string{"SYN-only packets", "ACK-only packets", "SYN+ACK packets", "RST packets"}, 2,
			"This checks for both SYN (0x02) and ACK (0x10) flags being set"),
	}
}

func tf(id int, prompt string, options []string, answerIndex int, explanation string) Question {
	opts := make([]Option, len(options))
	for idx, text := range options {
		opts[idx] = Option{Letter: string(rune('A' + idx)), Text: text}
	}
	return Question{
		ID:          id,
		Category:    "tcp-flags",
		Prompt:      prompt,
		Options:     opts,
		AnswerIndex: answerIndex,
		Explanation: explanation,
		PacketIndex: -1,
	}
}

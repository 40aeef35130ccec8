package grammar

// authorityResult reports the byte offsets (absolute, into the cursor's
// backing buffer) of each authority sub-component, in the layout consumed
// by the top-level orchestrator when it assembles the final Index.
type authorityResult struct {
	hasUser, hasPass   bool
	hasPort            bool
	userStart, userEnd int
	passStart, passEnd int
	hostStart, hostEnd int
	portStart, portEnd int
	host               hostResult
	port               uint16
}

// parseAuthority parses "//" authority and reports the sub-component spans.
// The cursor must be positioned at the leading "//".
func parseAuthority(c *cursor) (authorityResult, error) {
	start := c.pos
	var res authorityResult
	if !literal(c, "//") {
		return res, newRuleErr(ErrNoMatch, "authority", start)
	}

	bodyStart := c.pos
	bodyEnd := bodyStart
	for bodyEnd < len(c.s) && c.s[bodyEnd] != '/' && c.s[bodyEnd] != '?' && c.s[bodyEnd] != '#' {
		bodyEnd++
	}
	body := c.s[bodyStart:bodyEnd]

	atIdx := lastUnescapedByte(body, '@')
	hostport := body
	if atIdx >= 0 {
		userinfo := body[:atIdx]
		hostport = body[atIdx+1:]
		if err := validateUserInfoChars(userinfo, bodyStart); err != nil {
			c.pos = start
			return authorityResult{}, err
		}
		user, _, hasPass := splitUserInfo(userinfo)
		res.hasUser = true
		res.userStart, res.userEnd = bodyStart, bodyStart+len(user)
		if hasPass {
			res.hasPass = true
			res.passStart, res.passEnd = bodyStart+len(user)+1, bodyStart+atIdx
		}
	} else {
		// No "@": userinfo is absent, so the User span (which absorbs the
		// leading "//") ends exactly where the host begins.
		res.userStart, res.userEnd = bodyStart, bodyStart
	}

	hostStart := bodyStart + (len(body) - len(hostport))
	var hostText []byte
	var portText []byte
	portStart := -1
	if len(hostport) > 0 && hostport[0] == '[' {
		closeIdx := indexByte(hostport, ']')
		if closeIdx < 0 {
			c.pos = start
			return authorityResult{}, newRuleErr(ErrInvalidCharacter, "IP-literal", hostStart)
		}
		hostText = hostport[:closeIdx+1]
		if closeIdx+1 < len(hostport) {
			if hostport[closeIdx+1] != ':' {
				c.pos = start
				return authorityResult{}, newRuleErr(ErrInvalidCharacter, "authority", hostStart+closeIdx+1)
			}
			portText = hostport[closeIdx+2:]
			portStart = hostStart + closeIdx + 2
		}
	} else {
		colonIdx := lastUnescapedByte(hostport, ':')
		if colonIdx >= 0 {
			hostText = hostport[:colonIdx]
			portText = hostport[colonIdx+1:]
			portStart = hostStart + colonIdx + 1
		} else {
			hostText = hostport
		}
	}

	hr, err := parseHost(hostText, hostStart)
	if err != nil {
		c.pos = start
		return authorityResult{}, err
	}
	res.host = hr
	res.hostStart, res.hostEnd = hostStart, hostStart+len(hostText)

	if portStart >= 0 {
		port, err := parsePort(portText, portStart)
		if err != nil {
			c.pos = start
			return authorityResult{}, err
		}
		res.hasPort = true
		res.port = port
		res.portStart, res.portEnd = portStart, portStart+len(portText)
	} else {
		res.portStart, res.portEnd = res.hostEnd, res.hostEnd
	}

	c.pos = bodyEnd
	return res, nil
}

func lastUnescapedByte(s []byte, target byte) int {
	last := -1
	for i := 0; i < len(s); i++ {
		if s[i] == target {
			last = i
		} else if s[i] == '%' {
			i += 2
		}
	}
	return last
}

func indexByte(s []byte, target byte) int {
	for i, b := range s {
		if b == target {
			return i
		}
	}
	return -1
}

package attribute

// IsHref reports whether a is either of the link attributes, href or xlink:href.
func IsHref(a Attribute) bool {
	return a == Href || a == XLinkHref
}

// HrefSlot holds the link target of one element.
//
// SVG 1.1 links with xlink:href; SVG 2 uses plain href. When an element
// carries both, href wins no matter which one the document lists first.
type HrefSlot struct {
	value string
	from  Attribute
	set   bool
}

// Set records value as the link target if a is a link attribute and does not
// lose to an href already recorded. Non-link attributes are ignored.
func (s *HrefSlot) Set(a Attribute, value string) {
	if !IsHref(a) {
		return
	}
	if !s.set || a != XLinkHref {
		s.value = value
		s.from = a
		s.set = true
	}
}

// Value returns the recorded link target.
func (s *HrefSlot) Value() (string, bool) {
	return s.value, s.set
}

// From returns the attribute that supplied the current value.
// It is only meaningful when Value reports true.
func (s *HrefSlot) From() Attribute {
	return s.from
}

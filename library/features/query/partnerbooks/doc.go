// Package partnerbooks shows which books a partner published and which it authored.
package partnerbooks

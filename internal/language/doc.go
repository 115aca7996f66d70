// Package language normalizes ISO-639-ish caption language codes and decides
// whether a provider-reported track code satisfies a requested code. A base
// language matches its regional variants: requesting "en" accepts "en-US".
package language

package latex

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionPlaceholder is the token custom preamble templates use where the
// exam version number should appear.
const VersionPlaceholder = "%%VERSION%%"

// ExpandVersion replaces every occurrence of VersionPlaceholder in a
// preamble template with the version number.
func ExpandVersion(template string, version int) string {
	return strings.ReplaceAll(template, VersionPlaceholder, strconv.Itoa(version))
}

// DefaultPreamble returns the built-in exam-class document header for one
// version: running header and footer, a title block naming the version,
// and a trailing blank line. It does not close the document; the caller
// appends the questions section and \end{document}.
func DefaultPreamble(version int) string {
	return fmt.Sprintf(`\documentclass[addpoints,12pt,answers]{exam}
\usepackage{ttfamily}
\usepackage{textcomp}
\pagestyle{headandfoot}
\runningheader{CS Course}{Exam Version %d}{\today}
\runningfooter{Page \thepage\ of \numpages}{}{}

\begin{document}
\begin{center}
\textbf{Exam}\\
Version %d\\
\today
\end{center}

`, version, version)
}

package setauthor

// Message constants
const (
	MsgShort = "Commit with an explicit author identity and date"
	MsgLong  = `Runs git commit with the author and committer name, email, and date forced
through the environment, ignoring whatever the repository configuration
says. Arguments after -- are passed through to git commit.`
	MsgExample = `  # Commit staged changes as someone else on a fixed date
  srctidy setauthor --name "Jane Doe" --email jane@example.com 2024-03-01 -- -m "Import"

  # Rewrite the identity of HEAD
  srctidy setauthor --amend --name "Jane Doe" --email jane@example.com 2024-03-01`
)

package sax

var _ Handler = (*Callbacks)(nil)

func (s *Callbacks) StartDocument(ctx Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *Callbacks) EndDocument(ctx Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *Callbacks) StartElement(ctx Context, elem ParsedElement) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *Callbacks) EndElement(ctx Context, elem ParsedElement) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *Callbacks) Characters(ctx Context, data []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, data)
	}
	return nil
}

func (s *Callbacks) Error(ctx Context, err error) error {
	if h := s.ErrorHandler; h != nil {
		return h(ctx, err)
	}
	return nil
}
